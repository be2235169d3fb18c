package scoring

import (
	"math"

	"advisor-backend/advisor/model"
)

// Score runs all five factor scorers for one candidate and combines them into
// an OptionScore via the configured weights. The per-factor breakdown is
// recorded in model.FactorOrder so equal inputs always serialize identically.
// The caller is responsible for having validated cfg; weights summing to 1.0
// keeps the weighted total inside [0,100].
func Score(opt model.CandidateOption, finding model.Finding, profile model.RequesterProfile, projection model.CostProjection, cfg model.Config) model.OptionScore {
	raw := map[model.Factor]float64{
		model.FactorCapability: CapabilityMatch(opt, profile, cfg),
		model.FactorPreference: PreferenceMatch(opt, profile, cfg),
		model.FactorBudget:     BudgetFit(projection, profile, cfg),
		model.FactorTime:       TimeFit(opt, profile, cfg),
		model.FactorValue:      ValueRatio(finding, projection),
	}

	factors := make([]model.FactorScore, 0, len(model.FactorOrder))
	var total float64
	for _, f := range model.FactorOrder {
		w := cfg.Weights.For(f)
		weighted := w * raw[f]
		total += weighted
		factors = append(factors, model.FactorScore{
			Factor:   f,
			Score:    raw[f],
			Weight:   w,
			Weighted: math.Round(weighted*100) / 100,
		})
	}

	strengths, concerns := selectReasons(opt.Kind, factors)

	return model.OptionScore{
		Kind:      opt.Kind,
		Name:      opt.Name,
		Total:     clampTotal(int(math.Round(total))),
		Factors:   factors,
		Strengths: strengths,
		Concerns:  concerns,
	}
}

func clampTotal(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
