package importer

import (
	"math"

	"github.com/kperrault/ganksense/internal/refdata"
)

// DeriveDefault computes the fallback entry for a champion table as the
// arithmetic mean of every imported champion, rounded to one decimal.
// Unknown champions resolve to this entry at lookup time, so a roster-wide
// average keeps the estimate unbiased.
//
// Precondition: entries must be non-empty.
func DeriveDefault(entries []ChampionEntry) refdata.ChampionBaseStats {
	var sum refdata.ChampionBaseStats
	for _, e := range entries {
		sum.BaseArmor += e.Stats.BaseArmor
		sum.ArmorPerLevel += e.Stats.ArmorPerLevel
		sum.BaseMR += e.Stats.BaseMR
		sum.MRPerLevel += e.Stats.MRPerLevel
		sum.BaseHP += e.Stats.BaseHP
		sum.HPPerLevel += e.Stats.HPPerLevel
	}
	n := float64(len(entries))
	return refdata.ChampionBaseStats{
		BaseArmor:     round1(sum.BaseArmor / n),
		ArmorPerLevel: round1(sum.ArmorPerLevel / n),
		BaseMR:        round1(sum.BaseMR / n),
		MRPerLevel:    round1(sum.MRPerLevel / n),
		BaseHP:        round1(sum.BaseHP / n),
		HPPerLevel:    round1(sum.HPPerLevel / n),
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
