package engine

import (
	"fmt"

	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/refdata"
)

// Confidence penalties charged per uncertainty source. Modifier penalties
// come from the reference tables instead; everything accumulates into one
// scalar capped at PenaltyCap before subtraction.
const (
	penaltyShield       = 0.08
	penaltyDamageDelay  = 0.05
	penaltyRevive       = 0.20
	penaltyCooldownItem = 0.05

	// PenaltyCap bounds the total uncertainty deduction no matter how
	// many flags fired.
	PenaltyCap = 0.40
)

// EffectiveHealth is the outcome of layering defensive effects on top of
// the target's current health.
type EffectiveHealth struct {
	// EffectiveHP is the damage actually needed to secure the kill.
	EffectiveHP float64
	// ShieldedHP is effective health after the item layers only; summoner
	// adjustments apply to EffectiveHP but not to the reported figure.
	ShieldedHP float64
	// DamageMult scales the attacker's dealt damage (for example Exhaust).
	DamageMult float64
	// Penalty is the accumulated, uncapped confidence penalty.
	Penalty float64
	// ItemFlags are warnings raised by the target's defensive items.
	ItemFlags []string
	// ModifierWarnings are warnings raised by summoner-spell or rune
	// adjustments.
	ModifierWarnings []string
}

// ResolveEffectiveHP layers shields, damage-delay items, revive items,
// summoner-spell adjustments, and unknown-active-state cooldown items on
// top of currentHP. Each layer contributes an effective-health adjustment,
// a warning, a confidence penalty, or some combination.
//
// Flat shields add to effective health directly. Conditional shields
// (max-HP fractions, spell shields) are flagged but not added, since their
// activation cannot be known. Revive items never change the number; the
// 0.20 penalty acts as a hard veto on confidence instead.
//
// Postcondition: EffectiveHP >= currentHP when no modifier shrinks it;
// DamageMult > 0; Penalty >= 0.
func ResolveEffectiveHP(store *refdata.Store, currentHP float64, target snapshot.Target) EffectiveHealth {
	out := EffectiveHealth{
		EffectiveHP: currentHP,
		DamageMult:  1,
	}

	for _, item := range target.Items {
		def, ok := store.Item(item.Key)
		if !ok {
			continue
		}

		switch def.Shield.Kind {
		case refdata.ShieldFlat:
			out.EffectiveHP += def.Shield.Amount
			out.ItemFlags = append(out.ItemFlags,
				fmt.Sprintf("[!] %s: +%.0f shield", item.Name, def.Shield.Amount))
			out.Penalty += penaltyShield
		case refdata.ShieldPercentMaxHP:
			out.ItemFlags = append(out.ItemFlags,
				fmt.Sprintf("[!] %s: +%.0f%% max HP shield, conditional", item.Name, def.Shield.Amount*100))
			out.Penalty += penaltyShield
		case refdata.ShieldQualitative:
			out.ItemFlags = append(out.ItemFlags,
				fmt.Sprintf("[!] %s: %s", item.Name, def.Shield.Description))
			out.Penalty += penaltyShield
		}

		if def.DamageDelay > 0 {
			// A 30% delay defers damage past the burst window; treat it
			// as roughly half its fraction in extra effective health.
			out.EffectiveHP *= 1 + def.DamageDelay/2
			out.ItemFlags = append(out.ItemFlags,
				fmt.Sprintf("[!] %s: %.0f%% damage delayed", item.Name, def.DamageDelay*100))
			out.Penalty += penaltyDamageDelay
		}

		if def.Revive {
			out.ItemFlags = append(out.ItemFlags,
				fmt.Sprintf("[!!] %s: revive possible", item.Name))
			out.Penalty += penaltyRevive
		}
	}
	out.ShieldedHP = out.EffectiveHP

	for _, key := range target.Summoners {
		mod, ok := store.Modifier(key)
		if !ok {
			continue
		}
		if mod.HPMult > 0 {
			out.EffectiveHP *= mod.HPMult
			out.ModifierWarnings = append(out.ModifierWarnings,
				fmt.Sprintf("[!] %s: x%.2f effective HP", mod.Label, mod.HPMult))
			out.Penalty += mod.HPPenalty
		}
		if mod.DamageMult > 0 {
			out.DamageMult *= mod.DamageMult
			out.ModifierWarnings = append(out.ModifierWarnings,
				fmt.Sprintf("[!] %s: your damage x%.2f", mod.Label, mod.DamageMult))
			out.Penalty += mod.DamagePenalty
		}
	}

	for _, item := range target.Items {
		if desc, ok := store.CooldownFlag(item.Key); ok {
			out.ItemFlags = append(out.ItemFlags, "[!] "+desc)
			out.Penalty += penaltyCooldownItem
		}
	}

	return out
}
