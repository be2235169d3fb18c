package model

// OptionKind identifies one of the four solution paths a finding can be
// addressed with.
type OptionKind string

const (
	KindBuy     OptionKind = "buy"
	KindConnect OptionKind = "connect"
	KindBuild   OptionKind = "build"
	KindHire    OptionKind = "hire"
)

// AllKinds lists every option kind in tie-break order.
var AllKinds = []OptionKind{KindBuy, KindHire, KindConnect, KindBuild}

// Valid reports whether the kind is one of the four known paths.
func (k OptionKind) Valid() bool {
	switch k {
	case KindBuy, KindConnect, KindBuild, KindHire:
		return true
	}
	return false
}

// KindRank returns the fixed cost/risk ordering used to break score ties:
// buy < hire < connect < build. This ordering is a design decision, not a
// derived quantity; lower rank wins a tie.
func KindRank(k OptionKind) int {
	switch k {
	case KindBuy:
		return 0
	case KindHire:
		return 1
	case KindConnect:
		return 2
	case KindBuild:
		return 3
	default:
		return 4
	}
}

// CapabilityLevel is the requester's self-reported technical capability.
type CapabilityLevel string

const (
	CapabilityNone       CapabilityLevel = "none"
	CapabilityTutorial   CapabilityLevel = "tutorial_follower"
	CapabilityAutomation CapabilityLevel = "automation_user"
	CapabilityBuilder    CapabilityLevel = "builder"
	CapabilityTeam       CapabilityLevel = "has_team"
)

// CapabilityRank maps a capability level onto its ordinal position, or -1 for
// an unrecognized value.
func CapabilityRank(l CapabilityLevel) int {
	switch l {
	case CapabilityNone:
		return 0
	case CapabilityTutorial:
		return 1
	case CapabilityAutomation:
		return 2
	case CapabilityBuilder:
		return 3
	case CapabilityTeam:
		return 4
	default:
		return -1
	}
}

// BudgetTier buckets the requester's annual spend tolerance.
type BudgetTier string

const (
	BudgetLow         BudgetTier = "low"
	BudgetModerate    BudgetTier = "moderate"
	BudgetComfortable BudgetTier = "comfortable"
	BudgetHigh        BudgetTier = "high"
)

// Valid reports whether the tier is recognized.
func (t BudgetTier) Valid() bool {
	switch t {
	case BudgetLow, BudgetModerate, BudgetComfortable, BudgetHigh:
		return true
	}
	return false
}

// Urgency buckets how soon the requester needs the solution live.
type Urgency string

const (
	UrgencyThisWeek    Urgency = "this_week"
	UrgencyThisMonth   Urgency = "this_month"
	UrgencyThisQuarter Urgency = "this_quarter"
	UrgencyNoRush      Urgency = "no_rush"
)

// Valid reports whether the urgency is recognized.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyThisWeek, UrgencyThisMonth, UrgencyThisQuarter, UrgencyNoRush:
		return true
	}
	return false
}

// Factor names one of the five scoring dimensions.
type Factor string

const (
	FactorCapability Factor = "capability"
	FactorPreference Factor = "preference"
	FactorBudget     Factor = "budget"
	FactorTime       Factor = "time"
	FactorValue      Factor = "value"
)

// FactorOrder is the fixed evaluation and tie-break ordering for factors.
// Reason selection uses it as the secondary sort key so that equal
// weight-times-gap products always resolve the same way.
var FactorOrder = []Factor{FactorCapability, FactorPreference, FactorBudget, FactorTime, FactorValue}

// FactorRank returns the factor's position in FactorOrder, or the slice
// length for unknown factors.
func FactorRank(f Factor) int {
	for i, known := range FactorOrder {
		if known == f {
			return i
		}
	}
	return len(FactorOrder)
}
