// Package fallback detects degenerate evaluation outcomes and produces
// structured remediation guidance instead of a bare ranking.
package fallback

import (
	"fmt"

	"advisor-backend/advisor/model"
)

// Fixed remediation wording, one message per blocker class.
const (
	msgDeferFinding = "None of the available options fit your current budget. Defer this finding for now and revisit it once the budget ceiling rises; the underlying problem is real, but overspending to fix it would cost more than it saves."
	msgSkillPath    = "Every option here assumes more technical capability than you have today. Start a small skill path first: pick one tool from your stack, follow its beginner automation tutorials, and re-run this evaluation in a quarter."
	msgConsultation = "This finding has no clean self-serve path: the options are structurally complex for your situation. Book a consultation so a specialist can scope a staged approach before you commit budget."
)

// Evaluate inspects the ordered scores and returns a Fallback when no
// candidate clears the primary threshold, plus any advisories that apply
// regardless of whether a primary exists. The ordered slice must come from
// rank.Order so "best feasible" references are deterministic.
func Evaluate(ordered []model.OptionScore, candidates []model.CandidateOption, profile model.RequesterProfile, cfg model.Config) (*model.Fallback, []model.Advisory) {
	var fb *model.Fallback
	if allBelowPrimary(ordered, cfg) {
		fb = &model.Fallback{}
		fb.Kind = dominantBlocker(ordered, candidates, profile, cfg)
		switch fb.Kind {
		case model.FallbackBudgetBlocked:
			fb.Message = msgDeferFinding
		case model.FallbackCapabilityBlocked:
			fb.Message = msgSkillPath
		default:
			fb.Message = msgConsultation
		}
	}

	var advisories []model.Advisory
	if adv, ok := aspirationMismatch(ordered, profile); ok {
		advisories = append(advisories, adv)
	}
	if adv, ok := closedEcosystem(candidates, profile, cfg); ok {
		advisories = append(advisories, adv)
	}
	return fb, advisories
}

func allBelowPrimary(ordered []model.OptionScore, cfg model.Config) bool {
	if len(ordered) == 0 {
		return true
	}
	for _, s := range ordered {
		if float64(s.Total) >= cfg.PrimaryThreshold {
			return false
		}
	}
	return true
}

// dominantBlocker classifies which low factor is most prevalent across the
// candidate set. Equal prevalence resolves budget first, then capability,
// then structural, since budget remediation is the cheapest advice to act on.
func dominantBlocker(ordered []model.OptionScore, candidates []model.CandidateOption, profile model.RequesterProfile, cfg model.Config) model.FallbackKind {
	var budgetLow, capabilityLow, opennessBlocked int
	for _, s := range ordered {
		if v := s.FactorValue(model.FactorBudget); v >= 0 && v < 50 {
			budgetLow++
		}
		if v := s.FactorValue(model.FactorCapability); v >= 0 && v < 50 {
			capabilityLow++
		}
	}
	for _, c := range candidates {
		if c.Kind != model.KindConnect || c.Connect == nil {
			continue
		}
		if openness, listed := profile.ToolOpenness(c.Connect.TargetTool); listed && openness < cfg.OpennessFloor {
			opennessBlocked++
		}
	}

	switch {
	case budgetLow >= capabilityLow && budgetLow >= opennessBlocked && budgetLow > 0:
		return model.FallbackBudgetBlocked
	case capabilityLow >= opennessBlocked && capabilityLow > 0:
		return model.FallbackCapabilityBlocked
	default:
		return model.FallbackStructural
	}
}

// aspirationMismatch fires when the requester's stated preference scores low
// on capability or budget fit for that specific kind. The advisory offers a
// staged path toward the preferred kind while naming the best-scoring
// feasible candidate as the near-term pick.
func aspirationMismatch(ordered []model.OptionScore, profile model.RequesterProfile) (model.Advisory, bool) {
	var preferred *model.OptionScore
	for i := range ordered {
		if ordered[i].Kind == profile.Preference {
			preferred = &ordered[i]
			break
		}
	}
	if preferred == nil {
		return model.Advisory{}, false
	}
	capLow := func() bool { v := preferred.FactorValue(model.FactorCapability); return v >= 0 && v < 50 }()
	budgetLow := func() bool { v := preferred.FactorValue(model.FactorBudget); return v >= 0 && v < 50 }()
	if !capLow && !budgetLow {
		return model.Advisory{}, false
	}

	blocker := "budget"
	staged := "set aside part of the value this fix recovers each month until the numbers work"
	if capLow {
		blocker = "current skill set"
		staged = "build toward it in stages: start with guided tutorials on one tool, then graduate to small automations"
	}

	best := bestOtherKind(ordered, profile.Preference)
	msg := fmt.Sprintf("You said you'd prefer the %s path, but it doesn't fit your %s today. You can %s. In the meantime the %s option is the realistic near-term pick.",
		preferred.Kind, blocker, staged, best)
	return model.Advisory{Kind: model.AdvisoryAspirationMismatch, Message: msg}, true
}

func bestOtherKind(ordered []model.OptionScore, exclude model.OptionKind) model.OptionKind {
	for _, s := range ordered {
		if s.Kind != exclude {
			return s.Kind
		}
	}
	return exclude
}

// closedEcosystem fires when connect is the stated preference but the target
// tool's openness rating sits below the floor. Rather than a bare low score,
// the advisory names a workaround.
func closedEcosystem(candidates []model.CandidateOption, profile model.RequesterProfile, cfg model.Config) (model.Advisory, bool) {
	if profile.Preference != model.KindConnect {
		return model.Advisory{}, false
	}
	for _, c := range candidates {
		if c.Kind != model.KindConnect || c.Connect == nil {
			continue
		}
		openness, listed := profile.ToolOpenness(c.Connect.TargetTool)
		if !listed || openness >= cfg.OpennessFloor {
			continue
		}
		msg := fmt.Sprintf("%s is a closed ecosystem, so a clean automation against it isn't possible right now. A workaround exists: schedule a manual export from %s and let the automation pick up the exported file, or check whether %s offers a limited official connector.",
			c.Connect.TargetTool, c.Connect.TargetTool, c.Connect.TargetTool)
		return model.Advisory{Kind: model.AdvisoryClosedEcosystem, Message: msg}, true
	}
	return model.Advisory{}, false
}
