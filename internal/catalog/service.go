package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"advisor-backend/advisor/model"
)

// Service contains business logic for the vendor/product catalog.
type Service struct {
	Repo Repo
}

// OptionsFor returns the candidate options filed under a finding category in
// the fixed kind order. The evaluation engine depends on this ordering being
// stable for a given catalog state.
func (s *Service) OptionsFor(ctx context.Context, category string) ([]model.CandidateOption, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, errors.New("category is required")
	}
	entries, err := s.Repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Option, entries[j].Option
		if model.KindRank(a.Kind) != model.KindRank(b.Kind) {
			return model.KindRank(a.Kind) < model.KindRank(b.Kind)
		}
		return a.Name < b.Name
	})
	out := make([]model.CandidateOption, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Option)
	}
	return out, nil
}

// Categories lists the finding categories the catalog currently covers.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.Repo.ListCategories(ctx)
}

// Add validates and stores one catalog entry, assigning an ID when absent.
func (s *Service) Add(ctx context.Context, entry Entry) (Entry, error) {
	if !entry.Option.Kind.Valid() {
		return Entry{}, model.ValidationError{Field: "option.kind", Reason: "unrecognized kind " + string(entry.Option.Kind)}
	}
	if strings.TrimSpace(entry.Option.Name) == "" {
		return Entry{}, model.ValidationError{Field: "option.name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(entry.Category) == "" {
		return Entry{}, model.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if entry.Option.Cost.Upfront < 0 || entry.Option.Cost.Recurring < 0 {
		return Entry{}, model.ValidationError{Field: "option.cost", Reason: "must not be negative"}
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.Category = strings.ToLower(strings.TrimSpace(entry.Category))
	if err := s.Repo.Upsert(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
