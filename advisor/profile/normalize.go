// Package profile fills gaps in a requester profile using industry-specific
// defaults. Explicitly supplied fields are never overwritten.
package profile

import (
	"fmt"
	"strings"

	"advisor-backend/advisor/model"
)

// Defaults is one industry's fill-in set for unset profile fields.
type Defaults struct {
	Capability     model.CapabilityLevel
	Preference     model.OptionKind
	BudgetTier     model.BudgetTier
	Urgency        model.Urgency
	ComplianceNote string
}

// IndustryDefaults maps a lowercased industry tag to its defaults.
type IndustryDefaults map[string]Defaults

// GenericDefaults is the documented fallback used when the industry tag is
// missing or unrecognized. Industry personalization is an enhancement, not a
// hard requirement.
func GenericDefaults() Defaults {
	return Defaults{
		Capability: model.CapabilityTutorial,
		Preference: model.KindBuy,
		BudgetTier: model.BudgetModerate,
		Urgency:    model.UrgencyThisQuarter,
	}
}

// BuiltinIndustryDefaults returns the shipped industry default sets.
func BuiltinIndustryDefaults() IndustryDefaults {
	return IndustryDefaults{
		"regulated_care": {
			Capability:     model.CapabilityNone,
			Preference:     model.KindHire,
			BudgetTier:     model.BudgetModerate,
			Urgency:        model.UrgencyThisQuarter,
			ComplianceNote: "Regulated-care businesses must verify that any tool or vendor handling client records meets local data-protection and care-compliance requirements before rollout.",
		},
		"trades": {
			Capability: model.CapabilityNone,
			Preference: model.KindBuy,
			BudgetTier: model.BudgetLow,
			Urgency:    model.UrgencyThisMonth,
		},
		"ecommerce": {
			Capability: model.CapabilityTutorial,
			Preference: model.KindConnect,
			BudgetTier: model.BudgetModerate,
			Urgency:    model.UrgencyThisMonth,
		},
		"agency": {
			Capability: model.CapabilityAutomation,
			Preference: model.KindConnect,
			BudgetTier: model.BudgetModerate,
			Urgency:    model.UrgencyThisQuarter,
		},
		"software": {
			Capability: model.CapabilityBuilder,
			Preference: model.KindBuild,
			BudgetTier: model.BudgetComfortable,
			Urgency:    model.UrgencyNoRush,
		},
	}
}

// Normalize returns a fully populated copy of the profile, filling every
// unset field from the industry defaults, plus the industry's compliance note
// when one applies. An unknown industry tag falls back to the generic set.
func Normalize(p model.RequesterProfile, industries IndustryDefaults) (model.RequesterProfile, string) {
	defaults := GenericDefaults()
	tag := strings.ToLower(strings.TrimSpace(p.Industry))
	if industries != nil {
		if d, ok := industries[tag]; ok {
			defaults = d
		}
	}

	out := p
	out.Industry = tag
	if out.Industry == "" {
		out.Industry = "generic"
	}
	if out.Capability == "" {
		out.Capability = defaults.Capability
	}
	if out.Preference == "" {
		out.Preference = defaults.Preference
	}
	if out.BudgetTier == "" {
		out.BudgetTier = defaults.BudgetTier
	}
	if out.Urgency == "" {
		out.Urgency = defaults.Urgency
	}
	return out, defaults.ComplianceNote
}

// Validate fails fast when a normalized profile still has missing or
// unrecognized fields.
func Validate(p model.RequesterProfile) error {
	if model.CapabilityRank(p.Capability) < 0 {
		return model.ValidationError{Field: "profile.capability", Reason: "missing or unrecognized"}
	}
	if !p.Preference.Valid() {
		return model.ValidationError{Field: "profile.preference", Reason: "missing or unrecognized"}
	}
	if !p.BudgetTier.Valid() {
		return model.ValidationError{Field: "profile.budgetTier", Reason: "missing or unrecognized"}
	}
	if !p.Urgency.Valid() {
		return model.ValidationError{Field: "profile.urgency", Reason: "missing or unrecognized"}
	}
	for i, t := range p.Tools {
		if t.Openness < 0 || t.Openness > 5 {
			return model.ValidationError{Field: fmt.Sprintf("profile.tools[%d].openness", i), Reason: "must lie within [0,5]"}
		}
	}
	return nil
}
