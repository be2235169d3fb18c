package costs

import "advisor-backend/advisor/model"

// Assumed hours behind each monetized hidden-cost line item. The euro amounts
// come from multiplying these by the configured hourly rate, never from a
// hard-coded rate.
const (
	learningCurveHours      = 6
	annualMaintenanceHours  = 20
	integrationDebugHours   = 8
	vendorMigrationEstimate = 0 // lock-in risk is qualitative, no hour estimate
)

// hiddenCosts returns the line items that apply to the candidate's kind.
// Order is fixed so projections are deterministic.
func hiddenCosts(opt model.CandidateOption, cfg model.Config) []model.HiddenCost {
	var out []model.HiddenCost
	switch opt.Kind {
	case model.KindBuy:
		out = append(out, model.HiddenCost{
			Label:     "learning curve",
			Estimated: learningCurveHours * cfg.HourlyRate,
			Note:      "time for you and your staff to learn the product",
		})
		out = append(out, model.HiddenCost{
			Label:     "vendor lock-in risk",
			Estimated: vendorMigrationEstimate,
			Note:      "switching later means re-entering data and retraining",
		})
	case model.KindConnect:
		out = append(out, model.HiddenCost{
			Label:     "integration debugging",
			Estimated: integrationDebugHours * cfg.HourlyRate,
			Note:      "automations break when a connected tool changes its API",
		})
		out = append(out, model.HiddenCost{
			Label:     "learning curve",
			Estimated: learningCurveHours * cfg.HourlyRate,
			Note:      "time to learn the automation platform",
		})
	case model.KindBuild:
		out = append(out, model.HiddenCost{
			Label:     "ongoing maintenance",
			Estimated: annualMaintenanceHours * cfg.HourlyRate,
			Note:      "custom software needs fixes and updates every year",
		})
		out = append(out, model.HiddenCost{
			Label:     "learning curve",
			Estimated: learningCurveHours * cfg.HourlyRate,
			Note:      "time to learn the recommended toolchain",
		})
	case model.KindHire:
		out = append(out, model.HiddenCost{
			Label:     "ongoing maintenance",
			Estimated: 0,
			Note:      "changes after handover are usually billed separately",
		})
	}
	return out
}
