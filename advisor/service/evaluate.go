// Package service assembles the scoring pipeline into a single evaluation
// call: validate, normalize, project, score, rank, and compose the output.
package service

import (
	"fmt"
	"sort"

	"advisor-backend/advisor/costs"
	"advisor-backend/advisor/fallback"
	"advisor-backend/advisor/growth"
	"advisor-backend/advisor/model"
	"advisor-backend/advisor/profile"
	"advisor-backend/advisor/rank"
	"advisor-backend/advisor/scoring"
)

// Evaluate ranks the candidate options for one (finding, profile) pair and
// returns the composed Recommendation. It is a pure function: no I/O, no
// shared state, and identical inputs always yield an identical result. A
// candidate set where nothing clears the primary threshold is not an error;
// the result carries a fallback message instead of a primary.
func Evaluate(finding model.Finding, candidates []model.CandidateOption, requester model.RequesterProfile, industries profile.IndustryDefaults, cfg model.Config) (model.Recommendation, error) {
	if err := cfg.Validate(); err != nil {
		return model.Recommendation{}, err
	}
	if len(candidates) == 0 {
		return model.Recommendation{}, model.ValidationError{Field: "candidates", Reason: "must not be empty"}
	}
	for i, c := range candidates {
		if !c.Kind.Valid() {
			return model.Recommendation{}, model.ValidationError{Field: fmt.Sprintf("candidates[%d].kind", i), Reason: "unrecognized kind " + string(c.Kind)}
		}
		if c.Cost.Upfront < 0 || c.Cost.Recurring < 0 {
			return model.Recommendation{}, model.ValidationError{Field: fmt.Sprintf("candidates[%d].cost", i), Reason: "must not be negative"}
		}
	}

	normalized, complianceNote := profile.Normalize(requester, industries)
	if err := profile.Validate(normalized); err != nil {
		return model.Recommendation{}, err
	}

	projections := make([]model.CostProjection, 0, len(candidates))
	scores := make([]model.OptionScore, 0, len(candidates))
	for _, c := range candidates {
		p := costs.Project(c, cfg)
		projections = append(projections, p)
		scores = append(scores, scoring.Score(c, finding, normalized, p, cfg))
	}

	ordered := rank.Order(scores, normalized.Preference)
	primary, alternatives, notRecommended := rank.Partition(ordered, cfg)
	fb, advisories := fallback.Evaluate(ordered, candidates, normalized, cfg)

	// Cost table in the fixed kind order, then by name, regardless of the
	// caller's candidate ordering.
	sort.SliceStable(projections, func(i, j int) bool {
		if model.KindRank(projections[i].Kind) != model.KindRank(projections[j].Kind) {
			return model.KindRank(projections[i].Kind) < model.KindRank(projections[j].Kind)
		}
		return projections[i].Name < projections[j].Name
	})

	rec := model.Recommendation{
		Finding:        finding,
		Primary:        primary,
		Alternatives:   alternatives,
		NotRecommended: notRecommended,
		Fallback:       fb,
		Advisories:     advisories,
		CostTable:      projections,
		ComplianceNote: complianceNote,
	}
	if primary != nil {
		rec.GrowthPaths = growth.PathsFrom(primary.Kind)
	}
	return rec, nil
}
