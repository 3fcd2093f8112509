package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/kperrault/ganksense/internal/game/engine"
	"github.com/kperrault/ganksense/internal/game/snapshot"
)

func TestResolveTargetStatsLinearGrowth(t *testing.T) {
	store := testStore(t)

	at1 := engine.ResolveTargetStats(store, "khazix", 1, nil, 0)
	assert.Equal(t, 21.0, at1.Armor)
	assert.Equal(t, 585.0, at1.MaxHP)

	at10 := engine.ResolveTargetStats(store, "khazix", 10, nil, 0)
	assert.InDelta(t, 21+4.2*9, at10.Armor, 1e-9)
	assert.InDelta(t, 32+2.05*9, at10.MR, 1e-9)
	assert.InDelta(t, 585+100*9, at10.MaxHP, 1e-9)
}

func TestResolveTargetStatsLevelClamp(t *testing.T) {
	store := testStore(t)

	below := engine.ResolveTargetStats(store, "khazix", 0, nil, 0)
	at1 := engine.ResolveTargetStats(store, "khazix", 1, nil, 0)
	assert.Equal(t, at1, below)

	above := engine.ResolveTargetStats(store, "khazix", 25, nil, 0)
	at18 := engine.ResolveTargetStats(store, "khazix", 18, nil, 0)
	assert.Equal(t, at18, above)
}

func TestResolveTargetStatsUnknownChampionUsesDefault(t *testing.T) {
	store := testStore(t)

	got := engine.ResolveTargetStats(store, "nosuchchampion", 10, nil, 0)
	assert.InDelta(t, 28+4*9, got.Armor, 1e-9)
	assert.InDelta(t, 580+95*9, got.MaxHP, 1e-9)
}

func TestResolveTargetStatsItemDeltas(t *testing.T) {
	store := testStore(t)
	items := []snapshot.Item{
		snapshot.NewItem("Thornmail"),
		snapshot.NewItem("Unknown Trinket"),
	}

	bare := engine.ResolveTargetStats(store, "khazix", 10, nil, 0)
	built := engine.ResolveTargetStats(store, "khazix", 10, items, 0)

	assert.InDelta(t, bare.Armor+60, built.Armor, 1e-9)
	assert.InDelta(t, bare.MaxHP+350, built.MaxHP, 1e-9)
	assert.Equal(t, bare.MR, built.MR)
}

func TestResolveTargetStatsObservedMaxHPWins(t *testing.T) {
	store := testStore(t)
	items := []snapshot.Item{snapshot.NewItem("Thornmail")}

	got := engine.ResolveTargetStats(store, "khazix", 10, items, 2222)
	assert.Equal(t, 2222.0, got.MaxHP, "observed reading overrides the computed pool")
	assert.InDelta(t, 21+4.2*9+60, got.Armor, 1e-9, "armor still computed from tables")
}

// Property-based tests

func TestPropertyTargetStatsMonotonicInLevel(t *testing.T) {
	store := testStore(t)
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.IntRange(1, 17).Draw(t, "lo")
		hi := rapid.IntRange(lo+1, 18).Draw(t, "hi")

		a := engine.ResolveTargetStats(store, "khazix", lo, nil, 0)
		b := engine.ResolveTargetStats(store, "khazix", hi, nil, 0)
		if b.Armor < a.Armor || b.MR < a.MR || b.MaxHP < a.MaxHP {
			t.Fatalf("stats shrank from level %d to %d: %+v -> %+v", lo, hi, a, b)
		}
	})
}
