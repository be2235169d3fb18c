package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo stores catalog entries in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Entry
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Entry)}
}

// Upsert stores or replaces the entry.
func (r *MemoryRepo) Upsert(ctx context.Context, entry Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byID[entry.ID]; ok {
		entry.CreatedAt = existing.CreatedAt
	} else if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entry.UpdatedAt = time.Now().UTC()
	r.byID[entry.ID] = entry
	return nil
}

// GetByID returns an entry by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byID[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// ListByCategory returns all entries filed under the category, sorted by name
// so listings are stable.
func (r *MemoryRepo) ListByCategory(ctx context.Context, category string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	category = strings.ToLower(strings.TrimSpace(category))
	var out []Entry
	for _, entry := range r.byID {
		if strings.ToLower(entry.Category) == category {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Option.Name < out[j].Option.Name })
	return out, nil
}

// ListCategories returns the distinct categories present, sorted.
func (r *MemoryRepo) ListCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, entry := range r.byID {
		key := strings.ToLower(entry.Category)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out, nil
}
