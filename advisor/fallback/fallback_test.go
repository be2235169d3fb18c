package fallback

import (
	"strings"
	"testing"

	"advisor-backend/advisor/model"
)

func scoreWithFactors(kind model.OptionKind, total int, budget, capability float64) model.OptionScore {
	return model.OptionScore{
		Kind:  kind,
		Total: total,
		Factors: []model.FactorScore{
			{Factor: model.FactorCapability, Score: capability, Weight: 0.30},
			{Factor: model.FactorBudget, Score: budget, Weight: 0.20},
		},
	}
}

func TestNoFallbackWhenPrimaryExists(t *testing.T) {
	cfg := model.DefaultConfig()
	ordered := []model.OptionScore{scoreWithFactors(model.KindBuy, 85, 100, 100)}
	profile := model.RequesterProfile{Preference: model.KindBuy}

	fb, _ := Evaluate(ordered, nil, profile, cfg)
	if fb != nil {
		t.Fatalf("no fallback expected when a candidate clears the primary threshold, got %+v", fb)
	}
}

func TestBudgetBlockedFallback(t *testing.T) {
	cfg := model.DefaultConfig()
	ordered := []model.OptionScore{
		scoreWithFactors(model.KindHire, 60, 20, 100),
		scoreWithFactors(model.KindBuy, 55, 20, 100),
		scoreWithFactors(model.KindBuild, 30, 20, 40),
	}
	profile := model.RequesterProfile{Preference: model.KindBuy}

	fb, _ := Evaluate(ordered, nil, profile, cfg)
	if fb == nil {
		t.Fatalf("expected a fallback when every candidate is below the primary threshold")
	}
	if fb.Kind != model.FallbackBudgetBlocked {
		t.Fatalf("budget-low scores dominate, expected budget_blocked, got %s", fb.Kind)
	}
	if !strings.Contains(fb.Message, "Defer") {
		t.Fatalf("budget-blocked message should advise deferring, got %q", fb.Message)
	}
}

func TestCapabilityBlockedFallback(t *testing.T) {
	cfg := model.DefaultConfig()
	ordered := []model.OptionScore{
		scoreWithFactors(model.KindConnect, 45, 100, 10),
		scoreWithFactors(model.KindBuild, 30, 100, 5),
		scoreWithFactors(model.KindHire, 60, 20, 100),
	}
	profile := model.RequesterProfile{Preference: model.KindConnect}

	fb, _ := Evaluate(ordered, nil, profile, cfg)
	if fb == nil || fb.Kind != model.FallbackCapabilityBlocked {
		t.Fatalf("capability-low scores dominate, expected capability_blocked, got %+v", fb)
	}
	if !strings.Contains(fb.Message, "skill") {
		t.Fatalf("capability-blocked message should suggest a skill path, got %q", fb.Message)
	}
}

func TestStructuralFallbackWhenNothingDominates(t *testing.T) {
	cfg := model.DefaultConfig()
	// All factors healthy yet every total sits below the primary threshold.
	ordered := []model.OptionScore{
		scoreWithFactors(model.KindBuy, 65, 80, 95),
		scoreWithFactors(model.KindHire, 62, 80, 95),
	}
	profile := model.RequesterProfile{Preference: model.KindBuy}

	fb, _ := Evaluate(ordered, nil, profile, cfg)
	if fb == nil || fb.Kind != model.FallbackStructural {
		t.Fatalf("expected structural fallback, got %+v", fb)
	}
	if !strings.Contains(fb.Message, "consultation") {
		t.Fatalf("structural message should suggest a consultation, got %q", fb.Message)
	}
}

func TestFallbackMessageNeverEmpty(t *testing.T) {
	cfg := model.DefaultConfig()
	cases := [][]model.OptionScore{
		{},
		{scoreWithFactors(model.KindBuy, 10, 20, 20)},
		{scoreWithFactors(model.KindBuild, 69, 80, 80)},
	}
	for i, ordered := range cases {
		fb, _ := Evaluate(ordered, nil, model.RequesterProfile{Preference: model.KindBuy}, cfg)
		if fb == nil || fb.Message == "" {
			t.Fatalf("case %d: expected a non-empty fallback message, got %+v", i, fb)
		}
	}
}

func TestAspirationMismatchAdvisory(t *testing.T) {
	cfg := model.DefaultConfig()
	// Requester prefers build, but build scores terribly on capability while
	// buy clears the bar: advisory must offer a staged path and still point
	// at the feasible pick.
	ordered := []model.OptionScore{
		scoreWithFactors(model.KindBuy, 88, 100, 100),
		scoreWithFactors(model.KindBuild, 35, 90, 5),
	}
	profile := model.RequesterProfile{Preference: model.KindBuild}

	fb, advisories := Evaluate(ordered, nil, profile, cfg)
	if fb != nil {
		t.Fatalf("primary exists, no fallback expected")
	}
	if len(advisories) != 1 || advisories[0].Kind != model.AdvisoryAspirationMismatch {
		t.Fatalf("expected an aspiration mismatch advisory, got %+v", advisories)
	}
	msg := advisories[0].Message
	if !strings.Contains(msg, "build") || !strings.Contains(msg, "buy") {
		t.Fatalf("advisory should name the preferred path and the feasible pick, got %q", msg)
	}
	if !strings.Contains(msg, "stages") {
		t.Fatalf("capability-blocked aspiration should offer a staged path, got %q", msg)
	}
}

func TestNoAspirationMismatchWhenPreferenceFeasible(t *testing.T) {
	cfg := model.DefaultConfig()
	ordered := []model.OptionScore{
		scoreWithFactors(model.KindConnect, 90, 100, 95),
		scoreWithFactors(model.KindBuy, 80, 100, 100),
	}
	_, advisories := Evaluate(ordered, nil, model.RequesterProfile{Preference: model.KindConnect}, cfg)
	for _, adv := range advisories {
		if adv.Kind == model.AdvisoryAspirationMismatch {
			t.Fatalf("feasible preference must not trigger the advisory: %q", adv.Message)
		}
	}
}

func TestClosedEcosystemAdvisory(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := model.RequesterProfile{
		Preference: model.KindConnect,
		Tools:      []model.ToolProfile{{Name: "LegacyCRM", Openness: 1}},
	}
	candidates := []model.CandidateOption{
		{Kind: model.KindConnect, Connect: &model.ConnectAttrs{Platform: "Make", TargetTool: "LegacyCRM"}},
	}
	ordered := []model.OptionScore{scoreWithFactors(model.KindConnect, 75, 100, 95)}

	_, advisories := Evaluate(ordered, candidates, profile, cfg)
	found := false
	for _, adv := range advisories {
		if adv.Kind == model.AdvisoryClosedEcosystem {
			found = true
			if !strings.Contains(adv.Message, "export") {
				t.Fatalf("closed-ecosystem advisory should describe a workaround, got %q", adv.Message)
			}
		}
	}
	if !found {
		t.Fatalf("expected a closed ecosystem advisory, got %+v", advisories)
	}
}

func TestNoClosedEcosystemAdvisoryForOpenTool(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := model.RequesterProfile{
		Preference: model.KindConnect,
		Tools:      []model.ToolProfile{{Name: "HubSpot", Openness: 5}},
	}
	candidates := []model.CandidateOption{
		{Kind: model.KindConnect, Connect: &model.ConnectAttrs{Platform: "Zapier", TargetTool: "HubSpot"}},
	}
	ordered := []model.OptionScore{scoreWithFactors(model.KindConnect, 90, 100, 95)}

	_, advisories := Evaluate(ordered, candidates, profile, cfg)
	for _, adv := range advisories {
		if adv.Kind == model.AdvisoryClosedEcosystem {
			t.Fatalf("open tool must not trigger the advisory: %q", adv.Message)
		}
	}
}
