// Package rank orders scored candidates and classifies them against the
// primary and alternative thresholds.
package rank

import (
	"sort"

	"advisor-backend/advisor/model"
)

// Order sorts the scores descending by total. Equal totals resolve by the
// documented tie-break rules: first the candidate matching the requester's
// stated preference, then the fixed cost/risk kind ordering
// buy < hire < connect < build. Identical inputs always produce the same
// order.
func Order(scores []model.OptionScore, preference model.OptionKind) []model.OptionScore {
	out := make([]model.OptionScore, len(scores))
	copy(out, scores)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		aPref := a.Kind == preference
		bPref := b.Kind == preference
		if aPref != bPref {
			return aPref
		}
		if model.KindRank(a.Kind) != model.KindRank(b.Kind) {
			return model.KindRank(a.Kind) < model.KindRank(b.Kind)
		}
		return a.Name < b.Name
	})
	return out
}

// Partition splits an ordered score list into primary, alternatives, and
// not-recommended. The single highest-scoring candidate at or above the
// primary threshold is marked primary; scores in [alternative, primary) are
// alternatives; everything below is not recommended. When no candidate clears
// the primary threshold the primary return is nil and the caller emits a
// fallback instead.
func Partition(ordered []model.OptionScore, cfg model.Config) (primary *model.OptionScore, alternatives, notRecommended []model.OptionScore) {
	for i := range ordered {
		s := ordered[i]
		switch {
		case primary == nil && float64(s.Total) >= cfg.PrimaryThreshold:
			s.IsPrimary = true
			primary = &s
		case float64(s.Total) >= cfg.AlternativeThreshold:
			alternatives = append(alternatives, s)
		default:
			notRecommended = append(notRecommended, s)
		}
	}
	return primary, alternatives, notRecommended
}
