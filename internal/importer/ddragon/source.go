// Package ddragon imports champion base stats from a Riot Data Dragon
// champion.json dump (https://ddragon.leagueoflegends.com). The dump
// carries every champion's level-1 stats and linear per-level growth,
// exactly the shape the champion reference table needs.
package ddragon

import (
	"fmt"
	"os"
	"sort"

	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/importer"
	"github.com/kperrault/ganksense/internal/refdata"
)

// Source reads Data Dragon champion.json files.
type Source struct{}

// NewSource constructs a Data Dragon source.
func NewSource() *Source {
	return &Source{}
}

// Load reads and converts a champion.json file.
//
// Precondition: sourcePath must name a readable Data Dragon champion.json.
// Postcondition: entries are sorted by canonical key; display names are
// canonicalized, so "Kha'Zix" and "KhaZix" collapse to one key.
func (s *Source) Load(sourcePath string) ([]importer.ChampionEntry, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sourcePath, err)
	}
	file, err := parseChampionFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourcePath, err)
	}

	entries := make([]importer.ChampionEntry, 0, len(file.Data))
	for _, cd := range file.Data {
		name := cd.Name
		if name == "" {
			name = cd.ID
		}
		if name == "" {
			return nil, fmt.Errorf("%s: champion entry with no name", sourcePath)
		}
		entries = append(entries, importer.ChampionEntry{
			Key:  snapshot.CanonicalKey(name),
			Name: name,
			Stats: refdata.ChampionBaseStats{
				BaseArmor:     cd.Stats.Armor,
				ArmorPerLevel: cd.Stats.ArmorPerLevel,
				BaseMR:        cd.Stats.SpellBlock,
				MRPerLevel:    cd.Stats.SpellBlockPerLvl,
				BaseHP:        cd.Stats.HP,
				HPPerLevel:    cd.Stats.HPPerLevel,
			},
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries, nil
}
