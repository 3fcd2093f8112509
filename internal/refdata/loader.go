package refdata

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Content file names expected inside the content directory.
const (
	championsFile = "champions.yaml"
	combosFile    = "combos.yaml"
	itemsFile     = "items.yaml"
	modifiersFile = "modifiers.yaml"
)

// yamlChampionsFile is the top-level YAML structure for champions.yaml.
type yamlChampionsFile struct {
	Champions map[string]yamlChampion `yaml:"champions"`
}

type yamlChampion struct {
	BaseArmor     float64 `yaml:"base_armor"`
	ArmorPerLevel float64 `yaml:"armor_per_level"`
	BaseMR        float64 `yaml:"base_mr"`
	MRPerLevel    float64 `yaml:"mr_per_level"`
	BaseHP        float64 `yaml:"base_hp"`
	HPPerLevel    float64 `yaml:"hp_per_level"`
}

// yamlCombosFile is the top-level YAML structure for combos.yaml.
type yamlCombosFile struct {
	Combos map[string]yamlCombo `yaml:"combos"`
}

type yamlCombo struct {
	Label      string          `yaml:"label"`
	CastOrder  string          `yaml:"cast_order"`
	Components []yamlComponent `yaml:"components"`
}

type yamlComponent struct {
	Label      string    `yaml:"label"`
	Base       []float64 `yaml:"base"`
	ADRatio    float64   `yaml:"ad_ratio"`
	APRatio    float64   `yaml:"ap_ratio"`
	MaxHPRatio float64   `yaml:"max_hp_ratio"`
	Type       string    `yaml:"type"`
	Rank       string    `yaml:"rank"`
}

// yamlItemsFile is the top-level YAML structure for items.yaml.
type yamlItemsFile struct {
	Items         map[string]yamlItem       `yaml:"items"`
	ActiveItems   map[string]yamlActiveItem `yaml:"active_items"`
	CooldownFlags map[string]string         `yaml:"cooldown_flags"`
}

type yamlItem struct {
	Armor       float64     `yaml:"armor"`
	MR          float64     `yaml:"mr"`
	HP          float64     `yaml:"hp"`
	Shield      *yamlShield `yaml:"shield"`
	Revive      bool        `yaml:"revive"`
	DamageDelay float64     `yaml:"damage_delay"`
}

// yamlShield maps the heterogeneous shield shapes onto the tagged variant.
// Exactly one of flat, percent_max_hp, or note may be set.
type yamlShield struct {
	Flat         float64 `yaml:"flat"`
	PercentMaxHP float64 `yaml:"percent_max_hp"`
	Note         string  `yaml:"note"`
}

type yamlActiveItem struct {
	Damage float64 `yaml:"damage"`
	Type   string  `yaml:"type"`
	Note   string  `yaml:"note"`
}

// yamlModifiersFile is the top-level YAML structure for modifiers.yaml.
type yamlModifiersFile struct {
	Modifiers map[string]yamlModifier `yaml:"modifiers"`
}

type yamlModifier struct {
	Label         string  `yaml:"label"`
	HPMult        float64 `yaml:"hp_mult"`
	HPPenalty     float64 `yaml:"hp_penalty"`
	DamageMult    float64 `yaml:"damage_mult"`
	DamagePenalty float64 `yaml:"damage_penalty"`
	Note          string  `yaml:"note"`
}

// LoadDir reads all reference tables from the given content directory.
//
// Precondition: dir must contain champions.yaml, combos.yaml, items.yaml,
// and modifiers.yaml.
// Postcondition: Returns fully populated Tables or a non-nil error naming
// the offending file.
func LoadDir(dir string) (Tables, error) {
	var t Tables

	data, err := os.ReadFile(filepath.Join(dir, championsFile))
	if err != nil {
		return t, fmt.Errorf("reading %s: %w", championsFile, err)
	}
	if t.Champions, err = ParseChampions(data); err != nil {
		return t, fmt.Errorf("%s: %w", championsFile, err)
	}

	data, err = os.ReadFile(filepath.Join(dir, combosFile))
	if err != nil {
		return t, fmt.Errorf("reading %s: %w", combosFile, err)
	}
	if t.Combos, err = ParseCombos(data); err != nil {
		return t, fmt.Errorf("%s: %w", combosFile, err)
	}

	data, err = os.ReadFile(filepath.Join(dir, itemsFile))
	if err != nil {
		return t, fmt.Errorf("reading %s: %w", itemsFile, err)
	}
	if t.Items, t.ActiveItems, t.CooldownFlags, err = ParseItems(data); err != nil {
		return t, fmt.Errorf("%s: %w", itemsFile, err)
	}

	data, err = os.ReadFile(filepath.Join(dir, modifiersFile))
	if err != nil {
		return t, fmt.Errorf("reading %s: %w", modifiersFile, err)
	}
	if t.Modifiers, err = ParseModifiers(data); err != nil {
		return t, fmt.Errorf("%s: %w", modifiersFile, err)
	}

	return t, nil
}

// LoadStore loads all tables from dir and constructs the Store.
//
// Postcondition: Returns a validated immutable Store or a non-nil error.
func LoadStore(dir string) (*Store, error) {
	t, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return NewStore(t)
}

// ParseChampions parses the champion stat table from YAML bytes.
func ParseChampions(data []byte) (map[string]ChampionBaseStats, error) {
	var file yamlChampionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing champions YAML: %w", err)
	}
	if len(file.Champions) == 0 {
		return nil, fmt.Errorf("no champion entries found")
	}
	out := make(map[string]ChampionBaseStats, len(file.Champions))
	for key, yc := range file.Champions {
		out[key] = ChampionBaseStats{
			BaseArmor:     yc.BaseArmor,
			ArmorPerLevel: yc.ArmorPerLevel,
			BaseMR:        yc.BaseMR,
			MRPerLevel:    yc.MRPerLevel,
			BaseHP:        yc.BaseHP,
			HPPerLevel:    yc.HPPerLevel,
		}
	}
	return out, nil
}

// ParseCombos parses the combo table from YAML bytes.
func ParseCombos(data []byte) (map[string]ComboDefinition, error) {
	var file yamlCombosFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing combos YAML: %w", err)
	}
	if len(file.Combos) == 0 {
		return nil, fmt.Errorf("no combo entries found")
	}
	out := make(map[string]ComboDefinition, len(file.Combos))
	for key, yc := range file.Combos {
		combo := ComboDefinition{
			Label:      yc.Label,
			CastOrder:  yc.CastOrder,
			Components: make([]DamageComponent, 0, len(yc.Components)),
		}
		for _, c := range yc.Components {
			combo.Components = append(combo.Components, DamageComponent{
				Label:      c.Label,
				Base:       c.Base,
				ADRatio:    c.ADRatio,
				APRatio:    c.APRatio,
				MaxHPRatio: c.MaxHPRatio,
				Type:       DamageType(c.Type),
				Rank:       RankSlot(c.Rank),
			})
		}
		out[key] = combo
	}
	return out, nil
}

// ParseItems parses defensive items, active damage items, and the
// unknown-active-state cooldown list from YAML bytes.
func ParseItems(data []byte) (map[string]ItemDefensiveStats, map[string]ActiveDamageItem, map[string]string, error) {
	var file yamlItemsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, nil, fmt.Errorf("parsing items YAML: %w", err)
	}

	items := make(map[string]ItemDefensiveStats, len(file.Items))
	for key, yi := range file.Items {
		shield, err := convertYAMLShield(yi.Shield)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("item %q: %w", key, err)
		}
		items[key] = ItemDefensiveStats{
			Armor:       yi.Armor,
			MR:          yi.MR,
			HP:          yi.HP,
			Shield:      shield,
			Revive:      yi.Revive,
			DamageDelay: yi.DamageDelay,
		}
	}

	active := make(map[string]ActiveDamageItem, len(file.ActiveItems))
	for key, ya := range file.ActiveItems {
		active[key] = ActiveDamageItem{
			Damage: ya.Damage,
			Type:   DamageType(ya.Type),
			Note:   ya.Note,
		}
	}

	return items, active, file.CooldownFlags, nil
}

// ParseModifiers parses the summoner-spell and rune adjustment table from
// YAML bytes.
func ParseModifiers(data []byte) (map[string]Modifier, error) {
	var file yamlModifiersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing modifiers YAML: %w", err)
	}
	out := make(map[string]Modifier, len(file.Modifiers))
	for key, ym := range file.Modifiers {
		out[key] = Modifier{
			Label:         ym.Label,
			HPMult:        ym.HPMult,
			HPPenalty:     ym.HPPenalty,
			DamageMult:    ym.DamageMult,
			DamagePenalty: ym.DamagePenalty,
			Note:          ym.Note,
		}
	}
	return out, nil
}

func convertYAMLShield(ys *yamlShield) (ShieldEffect, error) {
	if ys == nil {
		return ShieldEffect{Kind: ShieldNone}, nil
	}
	set := 0
	if ys.Flat > 0 {
		set++
	}
	if ys.PercentMaxHP > 0 {
		set++
	}
	if ys.Note != "" {
		set++
	}
	if set != 1 {
		return ShieldEffect{}, fmt.Errorf("shield must set exactly one of flat, percent_max_hp, note")
	}
	switch {
	case ys.Flat > 0:
		return ShieldEffect{Kind: ShieldFlat, Amount: ys.Flat}, nil
	case ys.PercentMaxHP > 0:
		return ShieldEffect{Kind: ShieldPercentMaxHP, Amount: ys.PercentMaxHP}, nil
	default:
		return ShieldEffect{Kind: ShieldQualitative, Description: ys.Note}, nil
	}
}
