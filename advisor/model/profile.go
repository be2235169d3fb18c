package model

// ToolProfile describes one tool the requester already runs, with an
// ecosystem-openness rating from 0 (fully closed) to 5 (open API, webhooks,
// native connectors).
type ToolProfile struct {
	Name     string `json:"name"`
	Openness int    `json:"openness"`
}

// RequesterProfile characterizes who is receiving the recommendation. Fields
// may be empty until the profile has been normalized; after normalization
// every field is populated.
type RequesterProfile struct {
	Capability CapabilityLevel `json:"capability"`
	Preference OptionKind      `json:"preference"`
	BudgetTier BudgetTier      `json:"budgetTier"`
	Urgency    Urgency         `json:"urgency"`
	Tools      []ToolProfile   `json:"tools,omitempty"`
	Industry   string          `json:"industry"`
}

// ToolOpenness returns the openness rating for the named tool and whether the
// requester listed it at all.
func (p RequesterProfile) ToolOpenness(name string) (int, bool) {
	for _, t := range p.Tools {
		if t.Name == name {
			return t.Openness, true
		}
	}
	return 0, false
}

// Finding is a specific business inefficiency or opportunity produced by the
// upstream analysis stage. Immutable once created.
type Finding struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	AnnualValue float64 `json:"annualValue"`
}
