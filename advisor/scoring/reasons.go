package scoring

import (
	"sort"

	"advisor-backend/advisor/model"
)

// Reason thresholds: factors at or above the high mark contribute a positive
// reason, factors below the low mark contribute a concern.
const (
	reasonHighMark = 80
	reasonLowMark  = 50
)

// Retention caps per candidate.
const (
	maxStrengths = 3
	maxConcerns  = 2
)

type reasonKey struct {
	kind   model.OptionKind
	factor model.Factor
}

// Templates live in their own lookup so reason wording can change without
// touching scoring math. Keys missing from the kind-specific tables fall back
// to the generic per-factor wording.
var positiveTemplates = map[reasonKey]string{
	{model.KindBuy, model.FactorCapability}:     "Ready-made software works at any skill level, no technical background needed",
	{model.KindConnect, model.FactorCapability}: "Matches your automation experience, so you can set this up yourself",
	{model.KindBuild, model.FactorCapability}:   "You have the skills to build and own this solution outright",
	{model.KindHire, model.FactorCapability}:    "An expert handles everything, with nothing for you to learn first",
	{model.KindBuy, model.FactorBudget}:         "The subscription fits comfortably inside your budget",
	{model.KindConnect, model.FactorBudget}:     "One-time setup effort with little to no ongoing cost",
	{model.KindBuild, model.FactorBudget}:       "Building it yourself avoids recurring vendor fees",
	{model.KindHire, model.FactorBudget}:        "The quoted project fee sits within your budget",
	{model.KindBuy, model.FactorTime}:           "You can be up and running within days",
	{model.KindConnect, model.FactorTime}:       "The automation can be live well within your timeline",
	{model.KindHire, model.FactorTime}:          "The vendor's delivery window fits your timeline",
}

var genericPositiveTemplates = map[model.Factor]string{
	model.FactorCapability: "Well matched to your technical skill level",
	model.FactorPreference: "This is the path you said you prefer",
	model.FactorBudget:     "The cost fits comfortably inside your budget",
	model.FactorTime:       "Delivers value well within your timeline",
	model.FactorValue:      "Strong expected return for what it costs",
}

var concernTemplates = map[reasonKey]string{
	{model.KindConnect, model.FactorCapability}: "Setting up automations needs more hands-on tool experience than you reported",
	{model.KindBuild, model.FactorCapability}:   "Building custom software needs development skills you don't have in-house yet",
	{model.KindHire, model.FactorCapability}:    "Paying an outside party duplicates capability you already have; you could build this yourself for less",
	{model.KindBuy, model.FactorBudget}:         "The recurring subscription strains your stated budget",
	{model.KindHire, model.FactorBudget}:        "The quoted project fee is well beyond your budget ceiling",
	{model.KindBuild, model.FactorTime}:         "A custom build takes longer than your timeline allows",
	{model.KindHire, model.FactorTime}:          "The vendor's delivery window is longer than your timeline",
}

var genericConcernTemplates = map[model.Factor]string{
	model.FactorCapability: "Demands more technical capability than you reported",
	model.FactorPreference: "Not the path you said you prefer",
	model.FactorBudget:     "The cost sits well above your budget ceiling",
	model.FactorTime:       "Too slow to deliver value within your timeline",
	model.FactorValue:      "Expected return is weak for what it costs",
}

func positiveReason(kind model.OptionKind, factor model.Factor) string {
	if msg, ok := positiveTemplates[reasonKey{kind, factor}]; ok {
		return msg
	}
	return genericPositiveTemplates[factor]
}

func concernReason(kind model.OptionKind, factor model.Factor) string {
	if msg, ok := concernTemplates[reasonKey{kind, factor}]; ok {
		return msg
	}
	return genericConcernTemplates[factor]
}

type reasonCandidate struct {
	factor  model.Factor
	message string
	// priority is the factor's weight times its gap from the triggering
	// threshold. Ties resolve by the fixed factor order.
	priority float64
}

// selectReasons picks the retained strengths and concerns from the factor
// breakdown, ordered by weight x gap descending with model.FactorOrder as the
// deterministic secondary key.
func selectReasons(kind model.OptionKind, factors []model.FactorScore) (strengths, concerns []string) {
	var pos, neg []reasonCandidate
	for _, fs := range factors {
		switch {
		case fs.Score >= reasonHighMark:
			pos = append(pos, reasonCandidate{
				factor:   fs.Factor,
				message:  positiveReason(kind, fs.Factor),
				priority: fs.Weight * (fs.Score - reasonHighMark),
			})
		case fs.Score < reasonLowMark:
			neg = append(neg, reasonCandidate{
				factor:   fs.Factor,
				message:  concernReason(kind, fs.Factor),
				priority: fs.Weight * (reasonLowMark - fs.Score),
			})
		}
	}
	sortReasonCandidates(pos)
	sortReasonCandidates(neg)
	return take(pos, maxStrengths), take(neg, maxConcerns)
}

func sortReasonCandidates(items []reasonCandidate) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].priority != items[j].priority {
			return items[i].priority > items[j].priority
		}
		return model.FactorRank(items[i].factor) < model.FactorRank(items[j].factor)
	})
}

func take(items []reasonCandidate, max int) []string {
	if len(items) > max {
		items = items[:max]
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.message)
	}
	return out
}
