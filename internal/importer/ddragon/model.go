package ddragon

// championFile is the top level of Data Dragon's champion.json.
type championFile struct {
	Type    string                  `json:"type"`
	Version string                  `json:"version"`
	Data    map[string]championData `json:"data"`
}

// championData is one champion entry. Only the defensive stats matter
// here; the rest of the payload is ignored.
type championData struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Stats championStats `json:"stats"`
}

// championStats uses Data Dragon's field names: spellblock is magic
// resist.
type championStats struct {
	HP               float64 `json:"hp"`
	HPPerLevel       float64 `json:"hpperlevel"`
	Armor            float64 `json:"armor"`
	ArmorPerLevel    float64 `json:"armorperlevel"`
	SpellBlock       float64 `json:"spellblock"`
	SpellBlockPerLvl float64 `json:"spellblockperlevel"`
}
