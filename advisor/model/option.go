package model

// BillingCadence describes how a candidate's recurring cost is billed.
type BillingCadence string

const (
	CadenceMonthly BillingCadence = "monthly"
	CadenceAnnual  BillingCadence = "annual"
	CadenceOneTime BillingCadence = "one_time"
)

// CostStructure carries a candidate option's price shape. Escalating marks
// vendors whose recurring price historically rises year over year.
type CostStructure struct {
	Upfront    float64        `json:"upfront"`
	Recurring  float64        `json:"recurring"`
	Cadence    BillingCadence `json:"cadence"`
	Escalating bool           `json:"escalating,omitempty"`
}

// ConnectAttrs are attributes specific to connect (automation) candidates.
type ConnectAttrs struct {
	Platform   string  `json:"platform"`
	TargetTool string  `json:"targetTool"`
	SetupHours float64 `json:"setupHours"`
}

// BuildAttrs are attributes specific to build (custom software) candidates.
type BuildAttrs struct {
	Toolchain      []string `json:"toolchain,omitempty"`
	NoCodeFriendly bool     `json:"noCodeFriendly"`
	BuildHours     float64  `json:"buildHours"`
}

// HireAttrs are attributes specific to hire (third-party execution)
// candidates; cost and timeline are quoted as ranges.
type HireAttrs struct {
	CostLow          float64 `json:"costLow"`
	CostHigh         float64 `json:"costHigh"`
	TimelineDaysLow  int     `json:"timelineDaysLow"`
	TimelineDaysHigh int     `json:"timelineDaysHigh"`
}

// CandidateOption is one concrete solution path for a finding, supplied by
// the vendor/product catalog.
type CandidateOption struct {
	Kind            OptionKind    `json:"kind"`
	Name            string        `json:"name"`
	Cost            CostStructure `json:"cost"`
	TimeToValueDays int           `json:"timeToValueDays"`
	Complexity      int           `json:"complexity"`
	Flexibility     int           `json:"flexibility"`
	Connect         *ConnectAttrs `json:"connect,omitempty"`
	Build           *BuildAttrs   `json:"build,omitempty"`
	Hire            *HireAttrs    `json:"hire,omitempty"`
}
