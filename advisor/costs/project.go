// Package costs projects a candidate option's cost over one and three years
// and surfaces the hidden line items the sticker price omits.
package costs

import (
	"math"

	"advisor-backend/advisor/model"
)

// Project computes the year-one and year-three totals, the cost trajectory,
// and the hidden-cost line items for one candidate. Setup and build hours for
// connect and build candidates are monetized at the configured hourly rate.
func Project(opt model.CandidateOption, cfg model.Config) model.CostProjection {
	upfront := opt.Cost.Upfront
	recurring := opt.Cost.Recurring

	var yearOne, yearThree float64
	switch opt.Cost.Cadence {
	case model.CadenceMonthly:
		yearOne = upfront + 12*recurring
		yearThree = upfront + 36*recurring
	case model.CadenceAnnual:
		yearOne = upfront + recurring
		yearThree = upfront + 3*recurring
	default: // one_time or unset
		yearOne = upfront
		yearThree = upfront
	}

	switch opt.Kind {
	case model.KindConnect:
		if opt.Connect != nil {
			setup := opt.Connect.SetupHours * cfg.HourlyRate
			yearOne += setup
			yearThree += setup
		}
	case model.KindBuild:
		if opt.Build != nil {
			build := opt.Build.BuildHours * cfg.HourlyRate
			yearOne += build
			yearThree += build
		}
	case model.KindHire:
		if opt.Hire != nil && opt.Hire.CostHigh > 0 {
			// Hire candidates quote a range; project against the midpoint.
			mid := (opt.Hire.CostLow + opt.Hire.CostHigh) / 2
			yearOne = mid
			yearThree = mid
		}
	}

	return model.CostProjection{
		Kind:        opt.Kind,
		Name:        opt.Name,
		YearOne:     round2(yearOne),
		YearThree:   round2(yearThree),
		Trajectory:  trajectory(opt),
		HiddenCosts: hiddenCosts(opt, cfg),
	}
}

// trajectory classifies how the candidate's spend moves: one-time purchases
// decrease (no material upkeep), escalating subscriptions increase, flat
// recurring cost is stable.
func trajectory(opt model.CandidateOption) model.CostTrajectory {
	if opt.Cost.Recurring <= 0 || opt.Cost.Cadence == model.CadenceOneTime || opt.Cost.Cadence == "" {
		return model.TrajectoryDecreasing
	}
	if opt.Cost.Escalating {
		return model.TrajectoryIncreasing
	}
	return model.TrajectoryStable
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
