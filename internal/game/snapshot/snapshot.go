// Package snapshot defines the per-tick input structures the estimator
// consumes: the local player's combat state and one observed enemy.
// Snapshots are value types built fresh each tick; nothing in this
// package holds state between evaluations.
package snapshot

import "strings"

// Item is a single held item, carrying both the canonical lookup key and
// the display name shown in overlay flags.
type Item struct {
	// Key is the canonical reference-data key (see CanonicalKey).
	Key string
	// Name is the human-readable display name from the game client.
	Name string
}

// AbilityRanks holds the current upgrade level of each ability slot.
// Ranks are 1-based; 0 means the slot has not been leveled and is treated
// as rank 1 by the damage resolver.
type AbilityRanks struct {
	Q int
	W int
	E int
	R int
}

// Rank returns the rank for the named slot ("q", "w", "e", "r").
// Unknown slots and unleveled abilities resolve to rank 1.
func (a AbilityRanks) Rank(slot string) int {
	var r int
	switch strings.ToLower(slot) {
	case "q":
		r = a.Q
	case "w":
		r = a.W
	case "e":
		r = a.E
	case "r":
		r = a.R
	}
	if r < 1 {
		return 1
	}
	return r
}

// Attacker is the local player's combat state at evaluation time.
type Attacker struct {
	// Champion is the canonical champion key.
	Champion string
	// ChampionName is the display name.
	ChampionName string
	Level        int
	// TotalAD is base + bonus attack damage.
	TotalAD float64
	AP      float64
	// ArmorPenPct is fractional percent armor penetration in [0,1]
	// (0.3 = 30% pen). The live client reports this inverted; the
	// snapshot provider converts before constructing the Attacker.
	ArmorPenPct  float64
	MagicPenFlat float64
	MagicPenPct  float64
	Lethality    float64
	Ranks        AbilityRanks
	Items        []Item
	Summoners    []string
	// HPFraction is current HP / max HP in (0,1]. Out-of-range values
	// are treated as full health by the evaluator.
	HPFraction float64
}

// Observed carries externally measured target health readings (for example
// from an on-screen panel reader). Zero values mean "not observed".
type Observed struct {
	// HPFraction overrides the estimated health fraction when in (0,1].
	HPFraction float64
	// CurrentHP is the observed absolute current health, display only.
	CurrentHP float64
	// MaxHP overrides the computed max health when non-zero. It captures
	// real build and rune effects the static tables cannot model.
	MaxHP float64
}

// Target is one enemy's observed state at evaluation time.
type Target struct {
	// Champion is the canonical champion key.
	Champion string
	// ChampionName is the display name.
	ChampionName string
	SummonerName string
	Level        int
	Position     string
	Items        []Item
	Summoners    []string
	Dead         bool
	Observed     Observed
}

// CanonicalKey normalizes a champion, item, or modifier display name into
// the canonical reference-data key: lowercased with apostrophes, periods,
// spaces, and hyphens removed. "Death's Dance" and "deaths dance" both map
// to "deathsdance". Applied once at snapshot construction; the estimator
// core only ever sees canonical keys.
func CanonicalKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case '\'', '’', '.', ' ', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NewItem builds an Item from a display name.
func NewItem(name string) Item {
	return Item{Key: CanonicalKey(name), Name: name}
}

// NormalizeHPFraction maps an observed health fraction into the valid
// domain (0,1]. Missing or out-of-range readings (OCR misreads can produce
// values above 1 or at/below 0) default to full health, which deliberately
// under-estimates the kill rather than over-estimating it.
func NormalizeHPFraction(f float64) float64 {
	if f <= 0 || f > 1 {
		return 1
	}
	return f
}
