// Package importer refreshes the champion reference tables from an
// external stat dump. Sources produce a common intermediate format; the
// importer derives the fallback entry, round-trips the result through the
// content parser, and only then writes champions.yaml.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kperrault/ganksense/internal/refdata"
)

// Importer orchestrates champion import from a Source to a content
// directory.
type Importer struct {
	source Source
}

// New constructs an Importer backed by the given Source.
//
// Precondition: source must be non-nil.
// Postcondition: returns a non-nil Importer.
func New(source Source) *Importer {
	return &Importer{source: source}
}

// yamlChampion mirrors the champions.yaml entry schema.
type yamlChampion struct {
	BaseArmor     float64 `yaml:"base_armor"`
	ArmorPerLevel float64 `yaml:"armor_per_level"`
	BaseMR        float64 `yaml:"base_mr"`
	MRPerLevel    float64 `yaml:"mr_per_level"`
	BaseHP        float64 `yaml:"base_hp"`
	HPPerLevel    float64 `yaml:"hp_per_level"`
}

type yamlChampionsFile struct {
	Champions map[string]yamlChampion `yaml:"champions"`
}

// Run loads champions from sourcePath, validates every stat block, adds the
// roster-average fallback entry, and writes champions.yaml to outputDir.
//
// Precondition: sourcePath must satisfy the source's layout requirements;
// outputDir must exist or be creatable.
// Postcondition: outputDir/champions.yaml holds a table the content loader
// accepts, or an error is returned and nothing is written.
func (imp *Importer) Run(sourcePath, outputDir string) error {
	overall := time.Now()

	t0 := time.Now()
	entries, err := imp.source.Load(sourcePath)
	if err != nil {
		return fmt.Errorf("loading source: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("source %s produced no champions", sourcePath)
	}
	fmt.Printf("load    %d champion(s) in %s\n", len(entries), time.Since(t0).Round(time.Millisecond))

	file := yamlChampionsFile{Champions: make(map[string]yamlChampion, len(entries)+1)}
	for _, e := range entries {
		if err := e.Stats.Validate(); err != nil {
			return fmt.Errorf("champion %q: %w", e.Name, err)
		}
		if _, exists := file.Champions[e.Key]; exists {
			return fmt.Errorf("duplicate champion key %q", e.Key)
		}
		file.Champions[e.Key] = toYAML(e.Stats)
	}
	file.Champions[refdata.DefaultKey] = toYAML(DeriveDefault(entries))

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("serialising champion table: %w", err)
	}

	// Validate output is loadable before writing.
	if _, err := refdata.ParseChampions(data); err != nil {
		return fmt.Errorf("champion table failed validation: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}
	outPath := filepath.Join(outputDir, "champions.yaml")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing champion table to %s: %w", outPath, err)
	}

	keys := make([]string, 0, len(file.Champions))
	for k := range file.Champions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("wrote   %s  (%d entries)\n", outPath, len(keys))
	fmt.Printf("total   %s\n", time.Since(overall).Round(time.Millisecond))
	return nil
}

func toYAML(s refdata.ChampionBaseStats) yamlChampion {
	return yamlChampion{
		BaseArmor:     s.BaseArmor,
		ArmorPerLevel: s.ArmorPerLevel,
		BaseMR:        s.BaseMR,
		MRPerLevel:    s.MRPerLevel,
		BaseHP:        s.BaseHP,
		HPPerLevel:    s.HPPerLevel,
	}
}
