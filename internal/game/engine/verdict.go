package engine

import "fmt"

// Verdict is the three-tier engage recommendation.
type Verdict string

const (
	VerdictGo    Verdict = "GO"
	VerdictRisky Verdict = "RISKY"
	VerdictNoGo  Verdict = "NO GO"
)

// Confidence thresholds and auto-pause bounds.
const (
	// ThresholdGo is the minimum confidence for a GO verdict.
	ThresholdGo = 0.80
	// ThresholdRisky is the minimum confidence for a RISKY verdict;
	// anything below is NO GO.
	ThresholdRisky = 0.60
	// ConfidenceCap bounds base confidence before penalties.
	ConfidenceCap = 0.97

	// MinEngageHP is the attacker health fraction below which evaluation
	// auto-pauses.
	MinEngageHP = 0.35
	// preGameSeconds is the early window during which the evaluation
	// auto-pauses; state is too volatile to estimate.
	preGameSeconds = 10
	// lateGameSeconds is the cutoff past which item actives and rune
	// scaling make the estimate unreliable.
	lateGameSeconds = 45 * 60
)

// Classify combines adjusted damage against effective health into the kill
// ratio, derives a bounded confidence net of the uncertainty penalty, and
// grades the result.
//
// Postcondition: killRatio >= 0; confidence in [0, ConfidenceCap]; the
// effective penalty subtracted never exceeds PenaltyCap.
func Classify(adjustedDamage, effectiveHP, penalty float64) (killRatio, confidence float64, verdict Verdict) {
	denom := effectiveHP
	if denom < 1 {
		denom = 1
	}
	killRatio = adjustedDamage / denom

	confidence = killRatio
	if confidence > ConfidenceCap {
		confidence = ConfidenceCap
	}
	if penalty > PenaltyCap {
		penalty = PenaltyCap
	}
	confidence -= penalty
	if confidence < 0 {
		confidence = 0
	}

	switch {
	case confidence >= ThresholdGo:
		verdict = VerdictGo
	case confidence >= ThresholdRisky:
		verdict = VerdictRisky
	default:
		verdict = VerdictNoGo
	}
	return killRatio, confidence, verdict
}

// pauseReason evaluates the auto-pause gate. Reasons are mutually
// exclusive and checked in a fixed order: pre-game window, attacker
// health, target death, late game. First match wins.
func pauseReason(attackerHP float64, targetDead bool, gameTime float64) (string, bool) {
	if gameTime > 0 && gameTime < preGameSeconds {
		return "pre-game (<10s)", true
	}
	if attackerHP < MinEngageHP {
		return fmt.Sprintf("your HP too low (%.0f%%)", attackerHP*100), true
	}
	if targetDead {
		return "target is dead", true
	}
	if gameTime > lateGameSeconds {
		return "late game (>45min), estimate unreliable", true
	}
	return "", false
}
