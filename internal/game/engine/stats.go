package engine

import (
	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/refdata"
)

// TargetStats is a target's derived defensive profile at evaluation time.
type TargetStats struct {
	Armor float64
	MR    float64
	MaxHP float64
}

// ResolveTargetStats computes a target's armor, magic resist, and max
// health at the given level, plus the flat deltas of every held item the
// reference tables know about. Unknown champions resolve to the default
// stat block; unknown items contribute zero.
//
// When observedMaxHP is non-zero it overrides the computed max health
// entirely. An on-screen reading captures the real build, runes, and
// growth, which the static tables cannot. Computed armor and MR are kept
// regardless.
//
// Postcondition: Never fails; MaxHP > 0 for any valid reference data set.
func ResolveTargetStats(store *refdata.Store, champion string, level int, items []snapshot.Item, observedMaxHP float64) TargetStats {
	base := store.Champion(champion)

	lvl := level
	if lvl < 1 {
		lvl = 1
	}
	if lvl > 18 {
		lvl = 18
	}
	growth := float64(lvl - 1)

	stats := TargetStats{
		Armor: base.BaseArmor + base.ArmorPerLevel*growth,
		MR:    base.BaseMR + base.MRPerLevel*growth,
		MaxHP: base.BaseHP + base.HPPerLevel*growth,
	}

	for _, item := range items {
		def, ok := store.Item(item.Key)
		if !ok {
			continue
		}
		stats.Armor += def.Armor
		stats.MR += def.MR
		stats.MaxHP += def.HP
	}

	if observedMaxHP > 0 {
		stats.MaxHP = observedMaxHP
	}
	return stats
}
