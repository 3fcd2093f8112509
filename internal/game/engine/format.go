package engine

import (
	"fmt"
	"strings"
)

// FormatResult renders a Result as the plain-text overlay body. Paused
// results render only the pause reason; evaluated results render the
// verdict line, target status, effective health, damage summary, combo
// suggestion, and every accumulated warning.
func FormatResult(r Result) string {
	if r.Paused {
		return fmt.Sprintf("[PAUSED] %s", r.PauseReason)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "[%s]  Confidence: %.0f%%  |  Kill ratio: %.0f%%\n",
		r.Verdict, r.Confidence*100, r.KillRatio*100)
	fmt.Fprintf(&b, "Target: %s  HP: %.0f%% (%.0f / %.0f)\n",
		r.TargetChampion, r.TargetHPFraction*100, r.TargetCurrentHP, r.TargetMaxHP)
	fmt.Fprintf(&b, "Effective HP (shields included): %.0f\n", r.TargetEffectiveHP)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Your burst: %.0f dmg  (raw %.0f | after resists %.0f)\n",
		r.RealDamage, r.RawDamage, r.RealDamage)
	fmt.Fprintf(&b, "Enemy armor: %.0f  |  MR: %.0f\n", r.ArmorUsed, r.MRUsed)
	if r.ActiveItemDamage > 0 {
		fmt.Fprintf(&b, "Active items: +%.0f dmg\n", r.ActiveItemDamage)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Combo: %s\n", r.CastOrder)

	if warnings := r.Warnings(); len(warnings) > 0 {
		b.WriteString("\nFlags:\n")
		for _, w := range warnings {
			b.WriteString("  " + w + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
