package catalog

import "context"

// Repo defines persistence operations for catalog entries.
type Repo interface {
	Upsert(ctx context.Context, entry Entry) error
	GetByID(ctx context.Context, id string) (Entry, error)
	ListByCategory(ctx context.Context, category string) ([]Entry, error)
	ListCategories(ctx context.Context) ([]string, error)
}
