package model

import (
	"fmt"
	"math"
)

// ValidationError identifies the offending field when inputs or configuration
// are malformed. These are programmer/configuration errors and are never
// silently coerced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Weights defines the relative importance of the five scoring factors. The
// five weights must sum to exactly 1.0.
type Weights struct {
	Capability float64 `json:"capability"`
	Preference float64 `json:"preference"`
	Budget     float64 `json:"budget"`
	Time       float64 `json:"time"`
	Value      float64 `json:"value"`
}

// DefaultWeights returns the fixed production weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Capability: 0.30,
		Preference: 0.20,
		Budget:     0.20,
		Time:       0.15,
		Value:      0.15,
	}
}

// Sum returns the total of all five weights.
func (w Weights) Sum() float64 {
	return w.Capability + w.Preference + w.Budget + w.Time + w.Value
}

// For returns the weight assigned to the given factor.
func (w Weights) For(f Factor) float64 {
	switch f {
	case FactorCapability:
		return w.Capability
	case FactorPreference:
		return w.Preference
	case FactorBudget:
		return w.Budget
	case FactorTime:
		return w.Time
	case FactorValue:
		return w.Value
	default:
		return 0
	}
}

// Validate checks that the weights sum to 1.0 and none are negative.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return ValidationError{Field: "weights", Reason: fmt.Sprintf("must sum to 1.0, got %.4f", w.Sum())}
	}
	for _, f := range FactorOrder {
		if w.For(f) < 0 {
			return ValidationError{Field: "weights." + string(f), Reason: "must not be negative"}
		}
	}
	return nil
}

// RatioBreakpoint is one step of the piecewise ratio-to-score mapping used by
// the budget-fit and time-fit scorers. Ratios at or below MaxRatio map to
// Score; the table is ordered ascending by MaxRatio.
type RatioBreakpoint struct {
	MaxRatio float64 `json:"maxRatio"`
	Score    float64 `json:"score"`
}

// TierCeilings maps each budget tier to its numeric annual ceiling in euros.
type TierCeilings struct {
	Low         float64 `json:"low"`
	Moderate    float64 `json:"moderate"`
	Comfortable float64 `json:"comfortable"`
	High        float64 `json:"high"`
}

// For returns the ceiling for the given tier, or 0 for an unknown tier.
func (t TierCeilings) For(tier BudgetTier) float64 {
	switch tier {
	case BudgetLow:
		return t.Low
	case BudgetModerate:
		return t.Moderate
	case BudgetComfortable:
		return t.Comfortable
	case BudgetHigh:
		return t.High
	default:
		return 0
	}
}

// UrgencyDayBudgets maps each urgency tier to its day budget.
type UrgencyDayBudgets struct {
	ThisWeek    int `json:"thisWeek"`
	ThisMonth   int `json:"thisMonth"`
	ThisQuarter int `json:"thisQuarter"`
	NoRush      int `json:"noRush"`
}

// For returns the day budget for the given urgency, or 0 for an unknown one.
func (u UrgencyDayBudgets) For(urgency Urgency) int {
	switch urgency {
	case UrgencyThisWeek:
		return u.ThisWeek
	case UrgencyThisMonth:
		return u.ThisMonth
	case UrgencyThisQuarter:
		return u.ThisQuarter
	case UrgencyNoRush:
		return u.NoRush
	default:
		return 0
	}
}

// Config carries every tunable the engine reads. It is snapshotted by the
// caller before an evaluation starts and treated as read-only thereafter, so
// a config reload can never be observed mid-evaluation.
type Config struct {
	Weights Weights `json:"weights"`

	// Classification thresholds on the 0-100 total score.
	PrimaryThreshold     float64 `json:"primaryThreshold"`
	AlternativeThreshold float64 `json:"alternativeThreshold"`

	// PreferenceBaseline is the preference-match score for candidates that
	// do not match the requester's stated preference.
	PreferenceBaseline float64 `json:"preferenceBaseline"`

	// HourlyRate monetizes setup and learning hours. It varies by market and
	// must never be hard-coded at call sites.
	HourlyRate float64 `json:"hourlyRate"`

	// OpennessFloor is the minimum ecosystem-openness rating below which a
	// connect path against that tool is considered closed.
	OpennessFloor int `json:"opennessFloor"`

	Breakpoints   []RatioBreakpoint `json:"breakpoints"`
	OverflowScore float64           `json:"overflowScore"`

	Ceilings    TierCeilings      `json:"ceilings"`
	UrgencyDays UrgencyDayBudgets `json:"urgencyDays"`
}

// DefaultConfig returns the production defaults. The 50%/100%/150%
// breakpoints are user-visible piecewise boundaries; tests depend on exact
// boundary behavior.
func DefaultConfig() Config {
	return Config{
		Weights:              DefaultWeights(),
		PrimaryThreshold:     70,
		AlternativeThreshold: 50,
		PreferenceBaseline:   60,
		HourlyRate:           40,
		OpennessFloor:        2,
		Breakpoints: []RatioBreakpoint{
			{MaxRatio: 0.5, Score: 100},
			{MaxRatio: 1.0, Score: 80},
			{MaxRatio: 1.5, Score: 50},
		},
		OverflowScore: 20,
		Ceilings: TierCeilings{
			Low:         1000,
			Moderate:    5000,
			Comfortable: 15000,
			High:        50000,
		},
		UrgencyDays: UrgencyDayBudgets{
			ThisWeek:    7,
			ThisMonth:   30,
			ThisQuarter: 90,
			NoRush:      365,
		},
	}
}

// Validate fails fast on any configuration that could produce unbounded or
// non-deterministic scores.
func (c Config) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.PrimaryThreshold <= c.AlternativeThreshold {
		return ValidationError{Field: "primaryThreshold", Reason: "must exceed alternativeThreshold"}
	}
	if c.PrimaryThreshold > 100 || c.AlternativeThreshold < 0 {
		return ValidationError{Field: "thresholds", Reason: "must lie within [0,100]"}
	}
	if c.PreferenceBaseline < 0 || c.PreferenceBaseline > 100 {
		return ValidationError{Field: "preferenceBaseline", Reason: "must lie within [0,100]"}
	}
	if c.HourlyRate <= 0 {
		return ValidationError{Field: "hourlyRate", Reason: "must be positive"}
	}
	if c.OpennessFloor < 0 || c.OpennessFloor > 5 {
		return ValidationError{Field: "opennessFloor", Reason: "must lie within [0,5]"}
	}
	if len(c.Breakpoints) == 0 {
		return ValidationError{Field: "breakpoints", Reason: "must not be empty"}
	}
	prev := 0.0
	for i, bp := range c.Breakpoints {
		if bp.MaxRatio <= prev {
			return ValidationError{Field: fmt.Sprintf("breakpoints[%d].maxRatio", i), Reason: "must be strictly ascending and positive"}
		}
		if bp.Score < 0 || bp.Score > 100 {
			return ValidationError{Field: fmt.Sprintf("breakpoints[%d].score", i), Reason: "must lie within [0,100]"}
		}
		prev = bp.MaxRatio
	}
	if c.OverflowScore < 0 || c.OverflowScore > 100 {
		return ValidationError{Field: "overflowScore", Reason: "must lie within [0,100]"}
	}
	for _, tier := range []BudgetTier{BudgetLow, BudgetModerate, BudgetComfortable, BudgetHigh} {
		if c.Ceilings.For(tier) < 0 {
			return ValidationError{Field: "ceilings." + string(tier), Reason: "must not be negative"}
		}
	}
	for _, u := range []Urgency{UrgencyThisWeek, UrgencyThisMonth, UrgencyThisQuarter, UrgencyNoRush} {
		if c.UrgencyDays.For(u) <= 0 {
			return ValidationError{Field: "urgencyDays." + string(u), Reason: "must be positive"}
		}
	}
	return nil
}
