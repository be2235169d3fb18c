package scoring

import (
	"math"
	"reflect"
	"testing"

	"advisor-backend/advisor/model"
)

func TestScoreWeightedTotal(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyThisMonth)
	finding := model.Finding{AnnualValue: 2400}
	opt := model.CandidateOption{Kind: model.KindBuy, Name: "InvoiceBot", TimeToValueDays: 1}
	projection := model.CostProjection{Kind: model.KindBuy, YearOne: 144}

	score := Score(opt, finding, profile, projection, cfg)

	// capability 100, preference 100 (buy default), budget 100, time 100, value 100.
	if score.Total != 100 {
		t.Fatalf("expected total 100, got %d", score.Total)
	}
	if len(score.Factors) != 5 {
		t.Fatalf("expected five-factor breakdown, got %d", len(score.Factors))
	}

	var recomputed float64
	for _, fs := range score.Factors {
		recomputed += fs.Weight * fs.Score
	}
	if int(math.Round(recomputed)) != score.Total {
		t.Fatalf("breakdown does not recompose the total: %v vs %d", recomputed, score.Total)
	}
}

func TestScoreBreakdownFollowsFactorOrder(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityAutomation, model.BudgetModerate, model.UrgencyThisQuarter)
	score := Score(model.CandidateOption{Kind: model.KindConnect}, model.Finding{AnnualValue: 1000}, profile, model.CostProjection{YearOne: 200}, cfg)

	for i, fs := range score.Factors {
		if fs.Factor != model.FactorOrder[i] {
			t.Fatalf("breakdown order differs from fixed factor order at %d: %s", i, fs.Factor)
		}
	}
}

func TestScoreReasonCaps(t *testing.T) {
	cfg := model.DefaultConfig()
	// Everything scores 100: five positive candidates, capped at three.
	profile := profileWith(model.CapabilityNone, model.BudgetHigh, model.UrgencyNoRush)
	best := Score(model.CandidateOption{Kind: model.KindBuy, TimeToValueDays: 1}, model.Finding{AnnualValue: 99999}, profile, model.CostProjection{YearOne: 10}, cfg)
	if len(best.Strengths) != 3 {
		t.Fatalf("expected exactly 3 retained strengths, got %d", len(best.Strengths))
	}
	if len(best.Concerns) != 0 {
		t.Fatalf("expected no concerns, got %v", best.Concerns)
	}

	// Everything scores poorly: concerns capped at two.
	worstProfile := profileWith(model.CapabilityNone, model.BudgetLow, model.UrgencyThisWeek)
	worstProfile.Preference = model.KindBuy
	worst := Score(model.CandidateOption{Kind: model.KindBuild, TimeToValueDays: 90}, model.Finding{AnnualValue: 100}, worstProfile, model.CostProjection{YearOne: 9000}, cfg)
	if len(worst.Concerns) != 2 {
		t.Fatalf("expected exactly 2 retained concerns, got %d: %v", len(worst.Concerns), worst.Concerns)
	}
}

func TestReasonSelectionOrdering(t *testing.T) {
	// Capability carries the heaviest weight, so with equal gaps its reason
	// must be retained first.
	factors := []model.FactorScore{
		{Factor: model.FactorCapability, Score: 10, Weight: 0.30},
		{Factor: model.FactorBudget, Score: 10, Weight: 0.20},
		{Factor: model.FactorTime, Score: 10, Weight: 0.15},
	}
	_, concerns := selectReasons(model.KindBuild, factors)
	if len(concerns) != 2 {
		t.Fatalf("expected two concerns, got %d", len(concerns))
	}
	if concerns[0] != concernReason(model.KindBuild, model.FactorCapability) {
		t.Fatalf("capability concern should rank first, got %q", concerns[0])
	}
	if concerns[1] != concernReason(model.KindBuild, model.FactorBudget) {
		t.Fatalf("budget concern should rank second, got %q", concerns[1])
	}
}

func TestReasonSelectionTieBreaksByFactorOrder(t *testing.T) {
	// Identical weight x gap products: the fixed factor order decides.
	factors := []model.FactorScore{
		{Factor: model.FactorValue, Score: 90, Weight: 0.15},
		{Factor: model.FactorTime, Score: 90, Weight: 0.15},
	}
	strengths, _ := selectReasons(model.KindBuy, factors)
	if len(strengths) != 2 {
		t.Fatalf("expected two strengths, got %d", len(strengths))
	}
	if strengths[0] != positiveReason(model.KindBuy, model.FactorTime) {
		t.Fatalf("time precedes value in the fixed factor order, got %q first", strengths[0])
	}
}

func TestScoreDeterministic(t *testing.T) {
	cfg := model.DefaultConfig()
	profile := profileWith(model.CapabilityTutorial, model.BudgetModerate, model.UrgencyThisMonth)
	finding := model.Finding{ID: "f1", AnnualValue: 3000}
	opt := model.CandidateOption{Kind: model.KindConnect, Name: "Zapier sync", Connect: &model.ConnectAttrs{Platform: "Zapier", TargetTool: "HubSpot", SetupHours: 3}}
	projection := model.CostProjection{Kind: model.KindConnect, YearOne: 120}

	first := Score(opt, finding, profile, projection, cfg)
	second := Score(opt, finding, profile, projection, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic scoring")
	}
}
