package model

// FactorScore is one entry in a candidate's per-factor breakdown.
type FactorScore struct {
	Factor   Factor  `json:"factor"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// OptionScore is the scored outcome for one candidate option.
type OptionScore struct {
	Kind      OptionKind    `json:"kind"`
	Name      string        `json:"name"`
	Total     int           `json:"total"`
	Factors   []FactorScore `json:"factors"`
	Strengths []string      `json:"strengths,omitempty"`
	Concerns  []string      `json:"concerns,omitempty"`
	IsPrimary bool          `json:"isPrimary"`
}

// FactorValue returns the raw score recorded for the given factor, or -1 if
// the breakdown does not contain it.
func (s OptionScore) FactorValue(f Factor) float64 {
	for _, fs := range s.Factors {
		if fs.Factor == f {
			return fs.Score
		}
	}
	return -1
}

// CostTrajectory classifies how a candidate's total cost moves over time.
type CostTrajectory string

const (
	TrajectoryStable     CostTrajectory = "stable"
	TrajectoryIncreasing CostTrajectory = "increasing"
	TrajectoryDecreasing CostTrajectory = "decreasing"
)

// HiddenCost is one non-sticker-price line item attached to a projection.
type HiddenCost struct {
	Label     string  `json:"label"`
	Estimated float64 `json:"estimated"`
	Note      string  `json:"note"`
}

// CostProjection is the cost projector's output for one candidate.
type CostProjection struct {
	Kind        OptionKind     `json:"kind"`
	Name        string         `json:"name"`
	YearOne     float64        `json:"yearOne"`
	YearThree   float64        `json:"yearThree"`
	Trajectory  CostTrajectory `json:"trajectory"`
	HiddenCosts []HiddenCost   `json:"hiddenCosts,omitempty"`
}

// FallbackKind classifies the dominant blocker when no candidate clears the
// primary threshold.
type FallbackKind string

const (
	FallbackBudgetBlocked     FallbackKind = "budget_blocked"
	FallbackCapabilityBlocked FallbackKind = "capability_blocked"
	FallbackStructural        FallbackKind = "structural"
)

// Fallback is the structured remediation output emitted instead of a primary
// recommendation. Its presence means no candidate was marked primary.
type Fallback struct {
	Kind    FallbackKind `json:"kind"`
	Message string       `json:"message"`
}

// AdvisoryKind classifies a non-blocking advisory note.
type AdvisoryKind string

const (
	AdvisoryAspirationMismatch AdvisoryKind = "aspiration_mismatch"
	AdvisoryClosedEcosystem    AdvisoryKind = "closed_ecosystem"
)

// Advisory is a structured note attached alongside the ranking, e.g. a staged
// path toward the requester's preferred-but-currently-infeasible kind.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Message string       `json:"message"`
}

// GrowthStep maps the primary candidate's kind to a future migration.
type GrowthStep struct {
	From                OptionKind `json:"from"`
	To                  OptionKind `json:"to"`
	Trigger             string     `json:"trigger"`
	Effort              string     `json:"effort"`
	PreservesInvestment bool       `json:"preservesInvestment"`
}

// Recommendation is the engine's single output object for one
// (finding, profile) evaluation.
type Recommendation struct {
	Finding        Finding          `json:"finding"`
	Primary        *OptionScore     `json:"primary,omitempty"`
	Alternatives   []OptionScore    `json:"alternatives,omitempty"`
	NotRecommended []OptionScore    `json:"notRecommended,omitempty"`
	Fallback       *Fallback        `json:"fallback,omitempty"`
	Advisories     []Advisory       `json:"advisories,omitempty"`
	CostTable      []CostProjection `json:"costTable"`
	GrowthPaths    []GrowthStep     `json:"growthPaths,omitempty"`
	ComplianceNote string           `json:"complianceNote,omitempty"`
}
