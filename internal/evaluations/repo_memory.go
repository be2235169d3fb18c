package evaluations

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores evaluations in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Evaluation
	byUser map[string][]Evaluation
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Evaluation),
		byUser: make(map[string][]Evaluation),
	}
}

// Create stores the evaluation.
func (r *MemoryRepo) Create(ctx context.Context, ev Evaluation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[ev.ID] = ev
	r.byUser[ev.UserID] = append(r.byUser[ev.UserID], ev)
	return nil
}

// GetByID returns an evaluation by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return Evaluation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.byID[id]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	return ev, nil
}

// ListByUser returns a user's evaluations, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := append([]Evaluation(nil), r.byUser[userID]...)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
