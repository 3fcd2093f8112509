package ddragon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kperrault/ganksense/internal/importer/ddragon"
)

const championJSON = `{
	"type": "champion",
	"version": "14.1.1",
	"data": {
		"Khazix": {
			"id": "Khazix",
			"name": "Kha'Zix",
			"stats": {
				"hp": 585, "hpperlevel": 100,
				"armor": 21, "armorperlevel": 4.2,
				"spellblock": 32, "spellblockperlevel": 2.05
			}
		},
		"Lucian": {
			"id": "Lucian",
			"name": "Lucian",
			"stats": {
				"hp": 615, "hpperlevel": 100,
				"armor": 24, "armorperlevel": 4.2,
				"spellblock": 30, "spellblockperlevel": 1.3
			}
		}
	}
}`

func writeDump(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "champion.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConvertsChampions(t *testing.T) {
	path := writeDump(t, championJSON)

	entries, err := ddragon.NewSource().Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sorted by canonical key.
	kz := entries[0]
	assert.Equal(t, "khazix", kz.Key, "display name apostrophe is stripped")
	assert.Equal(t, "Kha'Zix", kz.Name)
	assert.Equal(t, 21.0, kz.Stats.BaseArmor)
	assert.Equal(t, 4.2, kz.Stats.ArmorPerLevel)
	assert.Equal(t, 32.0, kz.Stats.BaseMR)
	assert.Equal(t, 2.05, kz.Stats.MRPerLevel)
	assert.Equal(t, 585.0, kz.Stats.BaseHP)
	assert.Equal(t, 100.0, kz.Stats.HPPerLevel)

	assert.Equal(t, "lucian", entries[1].Key)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := ddragon.NewSource().Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadRejectsWrongPayloadType(t *testing.T) {
	path := writeDump(t, `{"type": "item", "data": {"x": {}}}`)
	_, err := ddragon.NewSource().Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "champion")
}

func TestLoadRejectsEmptyData(t *testing.T) {
	path := writeDump(t, `{"type": "champion", "data": {}}`)
	_, err := ddragon.NewSource().Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeDump(t, `{not json`)
	_, err := ddragon.NewSource().Load(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToID(t *testing.T) {
	path := writeDump(t, `{
		"type": "champion",
		"data": {"MonkeyKing": {"id": "MonkeyKing", "stats": {
			"hp": 610, "hpperlevel": 99, "armor": 31, "armorperlevel": 4.7,
			"spellblock": 28, "spellblockperlevel": 2.05
		}}}
	}`)

	entries, err := ddragon.NewSource().Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "monkeyking", entries[0].Key)
}
