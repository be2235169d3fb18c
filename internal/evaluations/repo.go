package evaluations

import "context"

// Repo defines persistence operations for evaluations.
type Repo interface {
	Create(ctx context.Context, ev Evaluation) error
	GetByID(ctx context.Context, id string) (Evaluation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error)
}
