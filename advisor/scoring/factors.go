// Package scoring holds the five factor scorers and the weighted aggregator
// that turn a (candidate, profile, finding) triple into a 0-100 match score
// with human-readable reasons.
package scoring

import (
	"advisor-backend/advisor/model"
)

// capabilityTable is the fixed ordinal lookup per candidate kind, indexed by
// model.CapabilityRank. It is enumerated explicitly rather than derived so the
// behavior stays auditable by direct inspection. Buy scores near 100
// regardless of capability; build is out of reach below builder level; hire
// penalizes capable requesters who could self-serve more cheaply.
var capabilityTable = map[model.OptionKind][5]float64{
	//                 none  tutorial  automation  builder  team
	model.KindBuy:     {100, 100, 100, 95, 95},
	model.KindConnect: {10, 45, 95, 100, 100},
	model.KindBuild:   {5, 20, 45, 90, 100},
	model.KindHire:    {100, 95, 80, 30, 20},
}

// opennessCappedCapability is the ceiling applied to a connect candidate's
// capability score when the target tool's ecosystem is below the openness
// floor: skill cannot compensate for a tool with no integration surface.
const opennessCappedCapability = 35

// CapabilityMatch returns the capability-fit score for a candidate kind. For
// connect candidates the score is additionally capped when the target tool's
// openness rating sits below the configured floor.
func CapabilityMatch(opt model.CandidateOption, profile model.RequesterProfile, cfg model.Config) float64 {
	rank := model.CapabilityRank(profile.Capability)
	if rank < 0 {
		return 0
	}
	row, ok := capabilityTable[opt.Kind]
	if !ok {
		return 0
	}
	score := row[rank]

	if opt.Kind == model.KindConnect && opt.Connect != nil {
		if openness, listed := profile.ToolOpenness(opt.Connect.TargetTool); listed && openness < cfg.OpennessFloor {
			if score > opennessCappedCapability {
				score = opennessCappedCapability
			}
		}
	}
	return clamp(score)
}

// PreferenceMatch scores 100 when the candidate kind equals the stated
// preference and the configured baseline otherwise. Preference is a strong
// signal but never absolute.
func PreferenceMatch(opt model.CandidateOption, profile model.RequesterProfile, cfg model.Config) float64 {
	if opt.Kind == profile.Preference {
		return 100
	}
	return clamp(cfg.PreferenceBaseline)
}

// BudgetFit maps the ratio of year-one cost to the budget-tier ceiling
// through the configured piecewise breakpoints. A zero-cost candidate or a
// zero ceiling returns the maximal favorable score; the division is guarded,
// never propagated as an error.
func BudgetFit(projection model.CostProjection, profile model.RequesterProfile, cfg model.Config) float64 {
	ceiling := cfg.Ceilings.For(profile.BudgetTier)
	if projection.YearOne <= 0 || ceiling <= 0 {
		return 100
	}
	return piecewise(projection.YearOne/ceiling, cfg)
}

// TimeFit maps the ratio of days-to-value to the urgency day budget through
// the same piecewise breakpoints as BudgetFit.
func TimeFit(opt model.CandidateOption, profile model.RequesterProfile, cfg model.Config) float64 {
	days := opt.TimeToValueDays
	if opt.Kind == model.KindHire && opt.Hire != nil && opt.Hire.TimelineDaysHigh > 0 {
		days = (opt.Hire.TimelineDaysLow + opt.Hire.TimelineDaysHigh) / 2
	}
	budget := cfg.UrgencyDays.For(profile.Urgency)
	if days <= 0 || budget <= 0 {
		return 100
	}
	return piecewise(float64(days)/float64(budget), cfg)
}

// ValueRatio scores the finding's estimated annual value against the
// candidate's year-one cost: five times the cost back in a year maps to 100.
// Monotonic in value-per-euro; zero-cost candidates score the maximum.
func ValueRatio(finding model.Finding, projection model.CostProjection) float64 {
	if projection.YearOne <= 0 {
		return 100
	}
	if finding.AnnualValue <= 0 {
		return 0
	}
	ratio := finding.AnnualValue / projection.YearOne
	return clamp(ratio * 20)
}

// piecewise walks the ordered breakpoint table and returns the score of the
// first step whose MaxRatio contains the ratio, or the overflow score beyond
// the table. Boundary ratios belong to the step they equal.
func piecewise(ratio float64, cfg model.Config) float64 {
	for _, bp := range cfg.Breakpoints {
		if ratio <= bp.MaxRatio {
			return clamp(bp.Score)
		}
	}
	return clamp(cfg.OverflowScore)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
