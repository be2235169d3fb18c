package evaluations

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"advisor-backend/advisor/model"
	"advisor-backend/advisor/profile"
	"advisor-backend/advisor/service"
	"advisor-backend/internal/shared/metrics"
	"advisor-backend/internal/shared/telemetry"
	"advisor-backend/internal/usage"
)

// CandidateSource provides candidate options for a finding category. The
// catalog service satisfies this.
type CandidateSource interface {
	OptionsFor(ctx context.Context, category string) ([]model.CandidateOption, error)
}

// Service contains business logic for evaluations.
type Service struct {
	Repo       Repo
	Usage      *usage.Service
	Catalog    CandidateSource
	Industries profile.IndustryDefaults
	Config     func() model.Config
}

// Create runs the engine for one request and stores the result. When the
// request carries no inline candidates, they are loaded from the catalog by
// the finding's category.
func (s *Service) Create(ctx context.Context, userID string, req Request) (Evaluation, error) {
	if userID == "" {
		return Evaluation{}, errors.New("userID is required")
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, 1)
		if err != nil {
			return Evaluation{}, err
		}
		if !ok {
			return Evaluation{}, usage.ErrLimitReached
		}
	}

	ev, err := s.evaluate(ctx, userID, req)
	if err != nil {
		return Evaluation{}, err
	}

	if err := s.Repo.Create(ctx, ev); err != nil {
		return Evaluation{}, err
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, 1); err != nil {
			return Evaluation{}, err
		}
	}

	return ev, nil
}

// CreateBatch evaluates several findings for one requester. Findings are
// independent, so the engine runs concurrently; results come back in input
// order and one usage credit is consumed per finding.
func (s *Service) CreateBatch(ctx context.Context, userID string, requester model.RequesterProfile, findings []model.Finding) ([]Evaluation, error) {
	if userID == "" {
		return nil, errors.New("userID is required")
	}
	if len(findings) == 0 {
		return nil, model.ValidationError{Field: "findings", Reason: "must not be empty"}
	}

	if s.Usage != nil {
		ok, _, err := s.Usage.CanConsume(ctx, userID, len(findings))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, usage.ErrLimitReached
		}
	}

	results := make([]Evaluation, len(findings))
	errs := make([]error, len(findings))
	var wg sync.WaitGroup
	for i, finding := range findings {
		wg.Add(1)
		go func(i int, finding model.Finding) {
			defer wg.Done()
			results[i], errs[i] = s.evaluate(ctx, userID, Request{Finding: finding, Requester: requester})
		}(i, finding)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	for _, ev := range results {
		if err := s.Repo.Create(ctx, ev); err != nil {
			return nil, err
		}
	}

	if s.Usage != nil {
		if _, err := s.Usage.Consume(ctx, userID, len(findings)); err != nil {
			return nil, err
		}
	}

	return results, nil
}

// evaluate runs the engine for one request without touching quota or storage.
func (s *Service) evaluate(ctx context.Context, userID string, req Request) (Evaluation, error) {
	candidates := req.Candidates
	if len(candidates) == 0 && s.Catalog != nil {
		loaded, err := s.Catalog.OptionsFor(ctx, req.Finding.Category)
		if err != nil {
			return Evaluation{}, err
		}
		candidates = loaded
	}
	if len(candidates) == 0 {
		return Evaluation{}, ErrNoCandidates
	}

	cfg := model.DefaultConfig()
	if s.Config != nil {
		cfg = s.Config()
	}
	industries := s.Industries
	if industries == nil {
		industries = profile.BuiltinIndustryDefaults()
	}

	metrics.IncEvaluationStarted()
	started := time.Now()
	rec, err := service.Evaluate(req.Finding, candidates, req.Requester, industries, cfg)
	metrics.ObserveEvaluationDurationMs(float64(time.Since(started)) / float64(time.Millisecond))
	if err != nil {
		metrics.IncEvaluationFailed()
		return Evaluation{}, err
	}
	metrics.IncEvaluationCompleted()

	ev := Evaluation{
		ID:        uuid.NewString(),
		UserID:    userID,
		Request:   req,
		Result:    rec,
		CreatedAt: time.Now().UTC(),
	}
	ev.Request.Candidates = candidates

	telemetry.Info("evaluation.completed", map[string]any{
		"evaluation_id":    ev.ID,
		"finding_category": req.Finding.Category,
		"candidates":       len(candidates),
		"has_primary":      rec.Primary != nil,
	})

	return ev, nil
}

// Get returns an evaluation by ID, scoped to the owning user.
func (s *Service) Get(ctx context.Context, userID, id string) (Evaluation, error) {
	ev, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	if ev.UserID != userID {
		return Evaluation{}, ErrNotFound
	}
	return ev, nil
}

// List returns a user's evaluations, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Evaluation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
