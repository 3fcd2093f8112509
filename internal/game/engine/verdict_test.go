package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/kperrault/ganksense/internal/game/engine"
)

func TestClassifyTiers(t *testing.T) {
	tests := []struct {
		name    string
		damage  float64
		effHP   float64
		penalty float64
		want    engine.Verdict
	}{
		{"overkill is GO", 1000, 500, 0, engine.VerdictGo},
		{"exactly at GO threshold", 800, 1000, 0, engine.VerdictGo},
		{"between thresholds is RISKY", 700, 1000, 0, engine.VerdictRisky},
		{"exactly at RISKY threshold", 600, 1000, 0, engine.VerdictRisky},
		{"below RISKY is NO GO", 500, 1000, 0, engine.VerdictNoGo},
		{"penalty can demote GO to RISKY", 900, 1000, 0.15, engine.VerdictRisky},
		{"penalty can demote to NO GO", 900, 1000, 0.35, engine.VerdictNoGo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, verdict := engine.Classify(tt.damage, tt.effHP, tt.penalty)
			assert.Equal(t, tt.want, verdict)
		})
	}
}

func TestClassifyConfidenceCap(t *testing.T) {
	ratio, confidence, verdict := engine.Classify(5000, 500, 0)
	assert.Equal(t, 10.0, ratio, "kill ratio is uncapped")
	assert.Equal(t, engine.ConfidenceCap, confidence)
	assert.Equal(t, engine.VerdictGo, verdict)
}

func TestClassifyDenominatorFloor(t *testing.T) {
	// A dead-low effective HP must not blow up the ratio.
	ratio, _, _ := engine.Classify(100, 0, 0)
	assert.Equal(t, 100.0, ratio)

	ratio, _, _ = engine.Classify(100, 0.5, 0)
	assert.Equal(t, 100.0, ratio)
}

func TestClassifyConfidenceFloor(t *testing.T) {
	_, confidence, verdict := engine.Classify(10, 1000, 0.40)
	assert.Equal(t, 0.0, confidence)
	assert.Equal(t, engine.VerdictNoGo, verdict)
}

// Property-based tests

func TestPropertyClassifyConfidenceBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		damage := rapid.Float64Range(0, 10_000).Draw(t, "damage")
		effHP := rapid.Float64Range(0, 10_000).Draw(t, "eff_hp")
		penalty := rapid.Float64Range(0, 2).Draw(t, "penalty")

		ratio, confidence, _ := engine.Classify(damage, effHP, penalty)
		if ratio < 0 {
			t.Fatalf("negative kill ratio %g", ratio)
		}
		if confidence < 0 || confidence > engine.ConfidenceCap {
			t.Fatalf("confidence %g outside [0, %g]", confidence, engine.ConfidenceCap)
		}
	})
}

func TestPropertyClassifyPenaltyNeverExceedsCap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		damage := rapid.Float64Range(0, 10_000).Draw(t, "damage")
		effHP := rapid.Float64Range(1, 10_000).Draw(t, "eff_hp")
		penalty := rapid.Float64Range(engine.PenaltyCap, 5).Draw(t, "penalty")

		_, got, _ := engine.Classify(damage, effHP, penalty)
		_, capped, _ := engine.Classify(damage, effHP, engine.PenaltyCap)
		if got != capped {
			t.Fatalf("penalty %g produced %g, cap produced %g", penalty, got, capped)
		}
	})
}

func TestPropertyClassifyVerdictMatchesConfidence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		damage := rapid.Float64Range(0, 5000).Draw(t, "damage")
		effHP := rapid.Float64Range(1, 5000).Draw(t, "eff_hp")
		penalty := rapid.Float64Range(0, 0.5).Draw(t, "penalty")

		_, confidence, verdict := engine.Classify(damage, effHP, penalty)
		switch {
		case confidence >= engine.ThresholdGo:
			if verdict != engine.VerdictGo {
				t.Fatalf("confidence %g should be GO, got %s", confidence, verdict)
			}
		case confidence >= engine.ThresholdRisky:
			if verdict != engine.VerdictRisky {
				t.Fatalf("confidence %g should be RISKY, got %s", confidence, verdict)
			}
		default:
			if verdict != engine.VerdictNoGo {
				t.Fatalf("confidence %g should be NO GO, got %s", confidence, verdict)
			}
		}
	})
}
