package model

import (
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestWeightsMustSumToOne(t *testing.T) {
	cases := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{name: "default", weights: DefaultWeights(), wantErr: false},
		{name: "under", weights: Weights{Capability: 0.30, Preference: 0.20, Budget: 0.20, Time: 0.15, Value: 0.10}, wantErr: true},
		{name: "over", weights: Weights{Capability: 0.40, Preference: 0.20, Budget: 0.20, Time: 0.15, Value: 0.15}, wantErr: true},
		{name: "negative", weights: Weights{Capability: 1.30, Preference: -0.30, Budget: 0.20, Time: 0.15, Value: 0.15}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.weights.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfigValidateNamesOffendingField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HourlyRate = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected error for zero hourly rate")
	}
	if !strings.Contains(err.Error(), "hourlyRate") {
		t.Fatalf("error should name the field, got %q", err.Error())
	}
}

func TestConfigValidateThresholdOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrimaryThreshold = 50
	cfg.AlternativeThreshold = 70
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error when primary threshold does not exceed alternative")
	}
}

func TestConfigValidateBreakpointsAscending(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Breakpoints = []RatioBreakpoint{
		{MaxRatio: 1.0, Score: 80},
		{MaxRatio: 0.5, Score: 100},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unordered breakpoints")
	}
}

func TestKindRankOrdering(t *testing.T) {
	// The tie-break ordering buy < hire < connect < build is a documented
	// design decision; changing it breaks determinism guarantees downstream.
	if !(KindRank(KindBuy) < KindRank(KindHire) &&
		KindRank(KindHire) < KindRank(KindConnect) &&
		KindRank(KindConnect) < KindRank(KindBuild)) {
		t.Fatalf("kind rank ordering violated")
	}
}

func TestCapabilityRankOrdinal(t *testing.T) {
	levels := []CapabilityLevel{CapabilityNone, CapabilityTutorial, CapabilityAutomation, CapabilityBuilder, CapabilityTeam}
	for i, level := range levels {
		if CapabilityRank(level) != i {
			t.Fatalf("expected rank %d for %s, got %d", i, level, CapabilityRank(level))
		}
	}
	if CapabilityRank("wizard") != -1 {
		t.Fatalf("unknown level should rank -1")
	}
}
