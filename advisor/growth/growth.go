// Package growth resolves which solution paths a chosen candidate can
// naturally evolve into later.
package growth

import "advisor-backend/advisor/model"

// paths is the static migration table. Triggers and effort ratings are
// qualitative on purpose; the rendering collaborator prints them verbatim.
var paths = map[model.OptionKind][]model.GrowthStep{
	model.KindBuy: {
		{
			From:                model.KindBuy,
			To:                  model.KindConnect,
			Trigger:             "when you outgrow the product's built-in workflow and need it talking to the rest of your stack",
			Effort:              "low",
			PreservesInvestment: true,
		},
		{
			From:                model.KindBuy,
			To:                  model.KindBuild,
			Trigger:             "when per-seat pricing exceeds what a custom replacement would cost to run",
			Effort:              "high",
			PreservesInvestment: false,
		},
	},
	model.KindConnect: {
		{
			From:                model.KindConnect,
			To:                  model.KindBuild,
			Trigger:             "when integration complexity outgrows the automation platform",
			Effort:              "medium",
			PreservesInvestment: true,
		},
	},
	model.KindBuild: {
		{
			From:                model.KindBuild,
			To:                  model.KindHire,
			Trigger:             "when maintenance load exceeds the time your team can spare",
			Effort:              "medium",
			PreservesInvestment: true,
		},
	},
	model.KindHire: {
		{
			From:                model.KindHire,
			To:                  model.KindBuy,
			Trigger:             "when a ready-made product matures enough to replace the bespoke delivery",
			Effort:              "low",
			PreservesInvestment: false,
		},
		{
			From:                model.KindHire,
			To:                  model.KindConnect,
			Trigger:             "when your own automation skills catch up with what the vendor delivered",
			Effort:              "medium",
			PreservesInvestment: true,
		},
	},
}

// PathsFrom returns a copy of the migration steps available from the given
// kind, in table order.
func PathsFrom(kind model.OptionKind) []model.GrowthStep {
	steps := paths[kind]
	out := make([]model.GrowthStep, len(steps))
	copy(out, steps)
	return out
}
