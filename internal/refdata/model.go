// Package refdata holds the immutable reference tables the estimator
// consults: champion base stats, combo definitions, item stats, and
// summoner/rune adjustment tables. Tables are loaded once at startup and
// never mutated afterwards; lookups on unknown keys resolve to a default
// entry or a zero contribution, never an error.
package refdata

import (
	"fmt"
	"strings"
)

// DefaultKey is the fallback entry key every champion and combo table must
// contain. Unknown champions resolve to it.
const DefaultKey = "_default"

// DamageType classifies a damage contribution for mitigation purposes.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagic    DamageType = "magic"
	// DamageTrue is grouped with physical when resistances are applied.
	// True damage should bypass resistances entirely; the combo tables
	// were tuned against the grouped behavior, so it is locked in.
	DamageTrue DamageType = "true"
	// DamageExecute marks conditional active-item damage that is flagged
	// but added unmitigated.
	DamageExecute DamageType = "execute"
	// DamageNone marks active items with no damage contribution.
	DamageNone DamageType = "none"
)

// RankSlot names the ability slot whose rank selects a component's base
// damage. Empty means the component is rank-independent and always uses
// the first table entry.
type RankSlot string

const (
	RankQ    RankSlot = "q"
	RankW    RankSlot = "w"
	RankE    RankSlot = "e"
	RankR    RankSlot = "r"
	RankNone RankSlot = ""
)

// ChampionBaseStats is a champion's level-1 defensive baseline and linear
// per-level growth.
type ChampionBaseStats struct {
	BaseArmor     float64
	ArmorPerLevel float64
	BaseMR        float64
	MRPerLevel    float64
	BaseHP        float64
	HPPerLevel    float64
}

// Validate checks the stat block invariants.
//
// Postcondition: Returns nil iff all base stats are positive and all
// per-level growth values are non-negative.
func (c ChampionBaseStats) Validate() error {
	var errs []string
	if c.BaseArmor < 0 || c.BaseMR < 0 || c.BaseHP <= 0 {
		errs = append(errs, "base stats must be positive")
	}
	if c.ArmorPerLevel < 0 || c.MRPerLevel < 0 || c.HPPerLevel < 0 {
		errs = append(errs, "per-level growth must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// DamageComponent is one damage source inside a combo: a base-damage table
// indexed by ability rank plus stat ratios.
type DamageComponent struct {
	// Label is the human-readable ability name shown in the breakdown.
	Label string
	// Base is the flat damage table, indexed by 1-based ability rank.
	// Ranks past the end of the table reuse the last entry.
	Base []float64
	// ADRatio scales with the attacker's total AD.
	ADRatio float64
	// APRatio scales with the attacker's ability power.
	APRatio float64
	// MaxHPRatio scales with the target's max health.
	MaxHPRatio float64
	Type       DamageType
	// Rank selects which ability slot's rank indexes Base.
	Rank RankSlot
}

// BaseAtRank returns the flat base damage for the component at the given
// ability rank. Components without a rank slot always use the first entry.
//
// Postcondition: Never panics; an empty table returns 0.
func (c DamageComponent) BaseAtRank(rank int) float64 {
	if len(c.Base) == 0 {
		return 0
	}
	if c.Rank == RankNone {
		return c.Base[0]
	}
	idx := rank - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.Base) {
		idx = len(c.Base) - 1
	}
	return c.Base[idx]
}

// Validate checks the component invariants.
func (c DamageComponent) Validate() error {
	if c.Label == "" {
		return fmt.Errorf("component label must not be empty")
	}
	switch c.Type {
	case DamagePhysical, DamageMagic, DamageTrue:
	default:
		return fmt.Errorf("component %q: type must be physical, magic, or true, got %q", c.Label, c.Type)
	}
	switch c.Rank {
	case RankQ, RankW, RankE, RankR, RankNone:
	default:
		return fmt.Errorf("component %q: rank slot must be one of [q, w, e, r] or empty, got %q", c.Label, c.Rank)
	}
	return nil
}

// ComboDefinition is a champion's expected burst sequence.
type ComboDefinition struct {
	// Label is the combo's display description.
	Label string
	// CastOrder is the suggested hotkey sequence shown in the overlay.
	CastOrder string
	// Components are the ordered damage contributions.
	Components []DamageComponent
}

// Validate checks the combo invariants.
func (c ComboDefinition) Validate() error {
	if len(c.Components) == 0 {
		return fmt.Errorf("combo %q: must have at least one damage component", c.Label)
	}
	for _, comp := range c.Components {
		if err := comp.Validate(); err != nil {
			return fmt.Errorf("combo %q: %w", c.Label, err)
		}
	}
	return nil
}

// ShieldKind discriminates the heterogeneous per-item shield effects.
type ShieldKind int

const (
	// ShieldNone means the item grants no shield.
	ShieldNone ShieldKind = iota
	// ShieldFlat is a flat-value shield added to effective health.
	ShieldFlat
	// ShieldPercentMaxHP is a conditional max-health-fraction shield,
	// flagged but not numerically added.
	ShieldPercentMaxHP
	// ShieldQualitative is a shield effect with no usable number
	// (for example a spell shield), flagged only.
	ShieldQualitative
)

// ShieldEffect is the tagged shield variant carried by defensive items.
type ShieldEffect struct {
	Kind ShieldKind
	// Amount is the flat value for ShieldFlat or the max-HP fraction for
	// ShieldPercentMaxHP.
	Amount float64
	// Description is the display text for ShieldQualitative.
	Description string
}

// Validate checks the shield variant invariants.
func (s ShieldEffect) Validate() error {
	switch s.Kind {
	case ShieldNone:
		return nil
	case ShieldFlat:
		if s.Amount <= 0 {
			return fmt.Errorf("flat shield amount must be positive, got %g", s.Amount)
		}
	case ShieldPercentMaxHP:
		if s.Amount <= 0 || s.Amount > 1 {
			return fmt.Errorf("percent shield fraction must be in (0,1], got %g", s.Amount)
		}
	case ShieldQualitative:
		if s.Description == "" {
			return fmt.Errorf("qualitative shield must carry a description")
		}
	default:
		return fmt.Errorf("unknown shield kind %d", s.Kind)
	}
	return nil
}

// ItemDefensiveStats is the defensive contribution of one item on the
// target: flat stat deltas plus optional shield, revive, and damage-delay
// effects.
type ItemDefensiveStats struct {
	Armor  float64
	MR     float64
	HP     float64
	Shield ShieldEffect
	// Revive marks items that can return the holder to life. Treated as
	// a hard confidence veto, not a health quantity.
	Revive bool
	// DamageDelay is the fraction of incoming damage the item defers
	// (0.30 = 30% deferred).
	DamageDelay float64
}

// Validate checks the item stat invariants.
func (i ItemDefensiveStats) Validate() error {
	if i.DamageDelay < 0 || i.DamageDelay >= 1 {
		return fmt.Errorf("damage delay must be in [0,1), got %g", i.DamageDelay)
	}
	if err := i.Shield.Validate(); err != nil {
		return err
	}
	return nil
}

// ActiveDamageItem is the offensive contribution of one of the attacker's
// items with an active damage effect.
type ActiveDamageItem struct {
	Damage float64
	Type   DamageType
	Note   string
}

// Validate checks the active item invariants.
func (a ActiveDamageItem) Validate() error {
	switch a.Type {
	case DamagePhysical, DamageMagic, DamageExecute, DamageNone:
	default:
		return fmt.Errorf("active damage type must be one of [physical, magic, execute, none], got %q", a.Type)
	}
	if a.Damage < 0 {
		return fmt.Errorf("active damage must not be negative, got %g", a.Damage)
	}
	return nil
}

// Modifier is a summoner-spell or rune adjustment: an optional effective-HP
// multiplier on the target and an optional multiplier on the attacker's
// outgoing damage. Each present multiplier contributes its configured
// confidence penalty when applied.
type Modifier struct {
	// Label is the display name used in warnings.
	Label string
	// HPMult scales the target's effective health; 0 means absent.
	HPMult float64
	// HPPenalty is the confidence penalty charged when HPMult applies.
	HPPenalty float64
	// DamageMult scales the attacker's dealt damage; 0 means absent.
	DamageMult float64
	// DamagePenalty is the confidence penalty charged when DamageMult applies.
	DamagePenalty float64
	// Note is free-form advisory text for modifiers with no numeric effect.
	Note string
}

// Validate checks the modifier invariants.
func (m Modifier) Validate() error {
	if m.Label == "" {
		return fmt.Errorf("modifier label must not be empty")
	}
	if m.HPMult < 0 || m.DamageMult < 0 {
		return fmt.Errorf("modifier %q: multipliers must not be negative", m.Label)
	}
	if m.HPPenalty < 0 || m.DamagePenalty < 0 {
		return fmt.Errorf("modifier %q: penalties must not be negative", m.Label)
	}
	if m.HPMult > 0 && m.HPPenalty == 0 {
		return fmt.Errorf("modifier %q: hp multiplier requires a penalty", m.Label)
	}
	if m.DamageMult > 0 && m.DamagePenalty == 0 {
		return fmt.Errorf("modifier %q: damage multiplier requires a penalty", m.Label)
	}
	return nil
}
