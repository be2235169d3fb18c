package scoring

import (
	"testing"

	"advisor-backend/advisor/model"
)

func profileWith(capability model.CapabilityLevel, tier model.BudgetTier, urgency model.Urgency) model.RequesterProfile {
	return model.RequesterProfile{
		Capability: capability,
		Preference: model.KindBuy,
		BudgetTier: tier,
		Urgency:    urgency,
	}
}

func TestCapabilityTableSpotChecks(t *testing.T) {
	cfg := model.DefaultConfig()
	cases := []struct {
		name       string
		kind       model.OptionKind
		capability model.CapabilityLevel
		want       float64
	}{
		{"buy_for_novice", model.KindBuy, model.CapabilityNone, 100},
		{"buy_for_team", model.KindBuy, model.CapabilityTeam, 95},
		{"connect_for_novice", model.KindConnect, model.CapabilityNone, 10},
		{"connect_for_automation_user", model.KindConnect, model.CapabilityAutomation, 95},
		{"build_for_novice", model.KindBuild, model.CapabilityNone, 5},
		{"build_for_builder", model.KindBuild, model.CapabilityBuilder, 90},
		{"hire_for_novice", model.KindHire, model.CapabilityNone, 100},
		{"hire_for_builder", model.KindHire, model.CapabilityBuilder, 30},
		{"hire_for_team", model.KindHire, model.CapabilityTeam, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opt := model.CandidateOption{Kind: tc.kind}
			got := CapabilityMatch(opt, profileWith(tc.capability, model.BudgetLow, model.UrgencyNoRush), cfg)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCapabilityCappedByClosedEcosystem(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityAutomation, model.BudgetLow, model.UrgencyNoRush)
	profile.Tools = []model.ToolProfile{{Name: "LegacyCRM", Openness: 1}}

	opt := model.CandidateOption{
		Kind:    model.KindConnect,
		Connect: &model.ConnectAttrs{Platform: "Make", TargetTool: "LegacyCRM"},
	}
	got := CapabilityMatch(opt, profile, cfg)
	if got != opennessCappedCapability {
		t.Fatalf("closed target tool should cap the score at %v, got %v", opennessCappedCapability, got)
	}

	profile.Tools[0].Openness = 5
	if got := CapabilityMatch(opt, profile, cfg); got != 95 {
		t.Fatalf("open target tool should restore the table score, got %v", got)
	}
}

func TestPreferenceMatch(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyNoRush)
	profile.Preference = model.KindConnect

	if got := PreferenceMatch(model.CandidateOption{Kind: model.KindConnect}, profile, cfg); got != 100 {
		t.Fatalf("matching preference should score 100, got %v", got)
	}
	if got := PreferenceMatch(model.CandidateOption{Kind: model.KindBuild}, profile, cfg); got != cfg.PreferenceBaseline {
		t.Fatalf("non-matching preference should score the baseline %v, got %v", cfg.PreferenceBaseline, got)
	}
}

func TestBudgetFitPiecewiseBoundaries(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyNoRush) // ceiling 1000

	cases := []struct {
		name    string
		yearOne float64
		want    float64
	}{
		{"well_under", 100, 100},
		{"exactly_half", 500, 100},
		{"just_over_half", 501, 80},
		{"exactly_ceiling", 1000, 80},
		{"just_over_ceiling", 1001, 50},
		{"exactly_150pct", 1500, 50},
		{"beyond_150pct", 1501, 20},
		{"zero_cost", 0, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BudgetFit(model.CostProjection{YearOne: tc.yearOne}, profile, cfg)
			if got != tc.want {
				t.Fatalf("year-one %v: expected %v, got %v", tc.yearOne, tc.want, got)
			}
		})
	}
}

func TestBudgetFitZeroCeilingGuard(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Ceilings.Low = 0
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyNoRush)
	if got := BudgetFit(model.CostProjection{YearOne: 5000}, profile, cfg); got != 100 {
		t.Fatalf("zero ceiling must return the maximal favorable score, got %v", got)
	}
}

func TestBudgetFitMonotonicInCost(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetModerate, model.UrgencyNoRush)

	prev := 101.0
	for cost := 0.0; cost <= 12000; cost += 50 {
		got := BudgetFit(model.CostProjection{YearOne: cost}, profile, cfg)
		if got > prev {
			t.Fatalf("budget fit increased from %v to %v when cost rose to %v", prev, got, cost)
		}
		prev = got
	}
}

func TestTimeFitUsesUrgencyDayBudget(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyThisMonth) // 30 days

	cases := []struct {
		days int
		want float64
	}{
		{1, 100},
		{15, 100},
		{30, 80},
		{45, 50},
		{60, 20},
	}
	for _, tc := range cases {
		opt := model.CandidateOption{Kind: model.KindBuy, TimeToValueDays: tc.days}
		if got := TimeFit(opt, profile, cfg); got != tc.want {
			t.Fatalf("%d days: expected %v, got %v", tc.days, tc.want, got)
		}
	}
}

func TestTimeFitHireUsesTimelineMidpoint(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyThisMonth)

	opt := model.CandidateOption{
		Kind: model.KindHire,
		Hire: &model.HireAttrs{TimelineDaysLow: 20, TimelineDaysHigh: 40}, // midpoint 30
	}
	if got := TimeFit(opt, profile, cfg); got != 80 {
		t.Fatalf("expected 80 at the ceiling boundary, got %v", got)
	}
}

func TestValueRatioMonotonicAndGuarded(t *testing.T) {
	finding := model.Finding{AnnualValue: 2000}

	if got := ValueRatio(finding, model.CostProjection{YearOne: 0}); got != 100 {
		t.Fatalf("zero cost should score the maximum, got %v", got)
	}
	prev := -1.0
	for cost := 10000.0; cost >= 100; cost -= 100 {
		got := ValueRatio(finding, model.CostProjection{YearOne: cost})
		if got < prev {
			t.Fatalf("value ratio must not decrease as cost drops: %v then %v at cost %v", prev, got, cost)
		}
		if got < 0 || got > 100 {
			t.Fatalf("score out of bounds: %v", got)
		}
		prev = got
	}
	if got := ValueRatio(model.Finding{AnnualValue: 0}, model.CostProjection{YearOne: 100}); got != 0 {
		t.Fatalf("zero value should score 0, got %v", got)
	}
}

func TestAllFactorScoresBounded(t *testing.T) {
	cfg := model.DefaultConfig()
	finding := model.Finding{AnnualValue: 5000}
	capabilities := []model.CapabilityLevel{model.CapabilityNone, model.CapabilityTutorial, model.CapabilityAutomation, model.CapabilityBuilder, model.CapabilityTeam}
	tiers := []model.BudgetTier{model.BudgetLow, model.BudgetModerate, model.BudgetComfortable, model.BudgetHigh}

	for _, kind := range model.AllKinds {
		for _, capability := range capabilities {
			for _, tier := range tiers {
				profile := profileWith(capability, tier, model.UrgencyThisWeek)
				opt := model.CandidateOption{Kind: kind, TimeToValueDays: 45}
				projection := model.CostProjection{YearOne: 2500}

				scores := []float64{
					CapabilityMatch(opt, profile, cfg),
					PreferenceMatch(opt, profile, cfg),
					BudgetFit(projection, profile, cfg),
					TimeFit(opt, profile, cfg),
					ValueRatio(finding, projection),
				}
				for i, s := range scores {
					if s < 0 || s > 100 {
						t.Fatalf("factor %d out of [0,100] for kind=%s capability=%s tier=%s: %v", i, kind, capability, tier, s)
					}
				}
			}
		}
	}
}
