package engine

import (
	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/refdata"
)

// ComponentDamage is one rounded breakdown entry of the attacker's combo.
type ComponentDamage struct {
	Label  string
	Damage float64
	Type   refdata.DamageType
}

// ResolveDamage evaluates the attacker's combo against the current ability
// ranks and attacker stats, producing raw per-component damage split into
// the physical/true and magic accumulators. Mitigation is not applied
// here; the caller reduces both totals through the target's resistances so
// that raw and mitigated figures stay independently inspectable.
//
// True damage is accumulated with physical. It should bypass resistances,
// but the combo tables were tuned against the grouped behavior, so it is
// preserved.
//
// Postcondition: physRaw >= 0 and magicRaw >= 0 for non-negative inputs;
// breakdown has one entry per combo component.
func ResolveDamage(store *refdata.Store, attacker snapshot.Attacker, targetMaxHP float64) (physRaw, magicRaw float64, breakdown []ComponentDamage) {
	combo := store.Combo(attacker.Champion)

	breakdown = make([]ComponentDamage, 0, len(combo.Components))
	for _, comp := range combo.Components {
		base := comp.BaseAtRank(attacker.Ranks.Rank(string(comp.Rank)))
		raw := base +
			attacker.TotalAD*comp.ADRatio +
			attacker.AP*comp.APRatio +
			targetMaxHP*comp.MaxHPRatio

		breakdown = append(breakdown, ComponentDamage{
			Label:  comp.Label,
			Damage: round1(raw),
			Type:   comp.Type,
		})

		if comp.Type == refdata.DamageMagic {
			magicRaw += raw
		} else {
			physRaw += raw
		}
	}
	return physRaw, magicRaw, breakdown
}

// EffectiveArmor applies the attacker's percent penetration and
// level-scaled lethality to the target's armor.
//
// Lethality converts to flat penetration as lethality * (0.6 + 0.4*L/18),
// so a level-18 attacker realizes the full value.
//
// Postcondition: Returns >= 0 when armor >= 0; percent penetration never
// drives armor negative on its own.
func EffectiveArmor(armor float64, attacker snapshot.Attacker) float64 {
	flatPen := attacker.Lethality * (0.6 + 0.4*float64(attacker.Level)/18)
	afterPct := armor * (1 - attacker.ArmorPenPct)
	after := afterPct - flatPen
	if after < 0 {
		return 0
	}
	return after
}

// EffectiveMR applies the attacker's flat magic penetration to the
// target's magic resist, floored at zero.
func EffectiveMR(mr float64, attacker snapshot.Attacker) float64 {
	after := mr - attacker.MagicPenFlat
	if after < 0 {
		return 0
	}
	return after
}

// DamageReduction converts effective armor into a physical damage
// multiplier. Non-negative armor reduces damage via 100/(100+armor);
// negative armor amplifies it via 2 - 100/(100-armor), which approaches
// but never reaches a 2x ceiling.
//
// Postcondition: Returns a value in (0, 2).
func DamageReduction(effectiveArmor float64) float64 {
	if effectiveArmor >= 0 {
		return 100 / (100 + effectiveArmor)
	}
	return 2 - 100/(100-effectiveArmor)
}

// MagicReduction converts effective magic resist into a magic damage
// multiplier. Negative values are treated as zero resist.
//
// Postcondition: Returns a value in (0, 1].
func MagicReduction(effectiveMR float64) float64 {
	if effectiveMR < 0 {
		effectiveMR = 0
	}
	return 100 / (100 + effectiveMR)
}
