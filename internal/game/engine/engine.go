// Package engine implements the burst-kill estimator: it resolves a
// target's defensive stats, evaluates the attacker's combo through
// resistance curves, layers defensive items and modifiers into an
// effective health pool, and grades the result into a GO / RISKY / NO GO
// verdict with a bounded confidence score.
//
// Every evaluation is pure with respect to its input and the immutable
// reference tables: nothing persists between calls and no locking is
// needed. The owning poller invokes Evaluate once per tick.
package engine

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/refdata"
)

// Input is everything one evaluation depends on: the two snapshots plus
// the per-tick call parameters.
type Input struct {
	Attacker snapshot.Attacker
	Target   snapshot.Target
	// TargetHPFraction is an externally observed health fraction
	// (screen reader) overriding the snapshot value; 0 means none.
	TargetHPFraction float64
	// AttackerHPFraction overrides Attacker.HPFraction for the engage
	// gate; 0 means use the snapshot value.
	AttackerHPFraction float64
	// AlliesNearby is a rough count of visible allies; 0 means a solo
	// engage and raises an escape-tool reminder flag.
	AlliesNearby int
	// GameTime is the elapsed match time in seconds.
	GameTime float64
}

// Result is the full computed output of one evaluation tick.
type Result struct {
	AttackerChampion string
	TargetChampion   string

	// Damage breakdown.
	RawDamage        float64
	RealDamage       float64
	ActiveItemDamage float64
	Breakdown        []ComponentDamage

	// Target health.
	TargetCurrentHP   float64
	TargetMaxHP       float64
	TargetHPFraction  float64
	TargetEffectiveHP float64

	// Resistances used for mitigation.
	ArmorUsed float64
	MRUsed    float64

	// Kill assessment.
	KillRatio  float64
	Confidence float64
	Verdict    Verdict

	// Combo suggestion.
	ComboLabel string
	CastOrder  string

	// Warnings, split by source.
	Flags            []string
	ModifierWarnings []string
	ItemFlags        []string

	// Auto-pause outcome.
	Paused      bool
	PauseReason string
}

// Engine evaluates kill feasibility against the reference tables.
type Engine struct {
	store  *refdata.Store
	logger *zap.Logger
}

// New creates an Engine.
//
// Precondition: store and logger must be non-nil.
func New(store *refdata.Store, logger *zap.Logger) *Engine {
	return &Engine{store: store, logger: logger}
}

// Evaluate runs one full estimation tick. The returned error marks an
// internal computation fault; the caller skips the tick and retries with
// fresh input, since no state carries over from a failed call.
//
// Postcondition: On success, either Paused is true with a reason and no
// damage fields set, or the full breakdown is populated with Confidence
// in [0, 0.97].
func (e *Engine) Evaluate(in Input) (result Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("evaluating kill chance: %v", p)
		}
	}()

	result = Result{
		AttackerChampion: displayName(in.Attacker.ChampionName, in.Attacker.Champion),
		TargetChampion:   displayName(in.Target.ChampionName, in.Target.Champion),
		Verdict:          VerdictNoGo,
		TargetHPFraction: 1,
	}

	attackerHP := in.AttackerHPFraction
	if attackerHP <= 0 {
		attackerHP = in.Attacker.HPFraction
	}
	attackerHP = snapshot.NormalizeHPFraction(attackerHP)

	if reason, paused := pauseReason(attackerHP, in.Target.Dead, in.GameTime); paused {
		result.Paused = true
		result.PauseReason = reason
		return result, nil
	}

	if !e.store.HasChampion(in.Target.Champion) {
		e.logger.Debug("unknown target champion, using default stats",
			zap.String("champion", in.Target.Champion),
		)
	}

	// Target profile.
	hpFrac := in.TargetHPFraction
	if hpFrac <= 0 || hpFrac > 1 {
		hpFrac = in.Target.Observed.HPFraction
	}
	hpFrac = snapshot.NormalizeHPFraction(hpFrac)

	stats := ResolveTargetStats(e.store, in.Target.Champion, in.Target.Level, in.Target.Items, in.Target.Observed.MaxHP)
	currentHP := stats.MaxHP * hpFrac

	result.ArmorUsed = stats.Armor
	result.MRUsed = stats.MR
	result.TargetMaxHP = stats.MaxHP
	result.TargetCurrentHP = currentHP
	result.TargetHPFraction = hpFrac

	// Raw combo damage, then resistance mitigation.
	physRaw, magicRaw, breakdown := ResolveDamage(e.store, in.Attacker, stats.MaxHP)
	result.Breakdown = breakdown

	effArmor := EffectiveArmor(stats.Armor, in.Attacker)
	effMR := EffectiveMR(stats.MR, in.Attacker)
	armorMult := DamageReduction(effArmor)
	dealt := physRaw*armorMult + magicRaw*MagicReduction(effMR)

	// Active damage items add after mitigation; physical actives run
	// through the same armor multiplier, others land unmitigated.
	var activeDamage float64
	var activeUsed []string
	for _, item := range in.Attacker.Items {
		act, ok := e.store.ActiveItem(item.Key)
		if !ok || act.Damage <= 0 {
			continue
		}
		d := act.Damage
		if act.Type == refdata.DamagePhysical {
			d *= armorMult
		}
		activeDamage += d
		activeUsed = append(activeUsed, fmt.Sprintf("%s (+%.0f)", item.Name, d))
	}
	total := dealt + activeDamage

	result.RawDamage = round1(physRaw + magicRaw)
	result.RealDamage = round1(total)
	result.ActiveItemDamage = round1(activeDamage)

	// Effective health and uncertainty.
	eff := ResolveEffectiveHP(e.store, currentHP, in.Target)
	result.ItemFlags = eff.ItemFlags
	result.ModifierWarnings = eff.ModifierWarnings
	result.TargetEffectiveHP = round1(eff.ShieldedHP)

	if in.AlliesNearby == 0 {
		result.Flags = append(result.Flags, "Solo engage: watch for Phase Rush / Flash escape")
	}

	adjusted := total * eff.DamageMult
	ratio, confidence, verdict := Classify(adjusted, eff.EffectiveHP, eff.Penalty)
	result.KillRatio = round3(ratio)
	result.Confidence = round3(confidence)
	result.Verdict = verdict

	// Combo suggestion.
	combo := e.store.Combo(in.Attacker.Champion)
	result.ComboLabel = combo.Label
	result.CastOrder = combo.CastOrder
	if len(activeUsed) > 0 {
		result.ComboLabel += " + " + strings.Join(activeUsed, ", ")
	}

	return result, nil
}

// Warnings returns every accumulated warning across the three categories
// in display order.
func (r Result) Warnings() []string {
	out := make([]string, 0, len(r.Flags)+len(r.ModifierWarnings)+len(r.ItemFlags))
	out = append(out, r.Flags...)
	out = append(out, r.ModifierWarnings...)
	out = append(out, r.ItemFlags...)
	return out
}

func displayName(name, key string) string {
	if name != "" {
		return name
	}
	if key != "" {
		return key
	}
	return "Unknown"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
