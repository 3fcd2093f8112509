// Package main provides an offline harness for the estimator: it loads a
// scenario YAML describing the attacker and the target, runs one
// evaluation against the reference tables, and prints the formatted
// verdict. Useful for tuning the tables without a live game.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kperrault/ganksense/internal/config"
	"github.com/kperrault/ganksense/internal/game/engine"
	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/observability"
	"github.com/kperrault/ganksense/internal/refdata"
)

// scenario mirrors the simulation YAML. Champion and item names may be
// display names; keys are canonicalized on conversion. Summoner entries
// use the spell identifier, e.g. "SummonerBarrier".
type scenario struct {
	Attacker struct {
		Champion     string         `yaml:"champion"`
		Level        int            `yaml:"level"`
		TotalAD      float64        `yaml:"total_ad"`
		AP           float64        `yaml:"ap"`
		Lethality    float64        `yaml:"lethality"`
		ArmorPenPct  float64        `yaml:"armor_pen_pct"`
		MagicPenFlat float64        `yaml:"magic_pen_flat"`
		MagicPenPct  float64        `yaml:"magic_pen_pct"`
		Ranks        map[string]int `yaml:"ranks"`
		Items        []string       `yaml:"items"`
		HPFraction   float64        `yaml:"hp_fraction"`
	} `yaml:"attacker"`
	Target struct {
		Champion   string   `yaml:"champion"`
		Level      int      `yaml:"level"`
		HPFraction float64  `yaml:"hp_fraction"`
		MaxHP      float64  `yaml:"max_hp"`
		Items      []string `yaml:"items"`
		Summoners  []string `yaml:"summoners"`
		Dead       bool     `yaml:"dead"`
	} `yaml:"target"`
	GameTime     float64 `yaml:"game_time"`
	AlliesNearby int     `yaml:"allies_nearby"`
}

func main() {
	contentDir := flag.String("content", "content", "directory of reference YAML tables")
	scenarioPath := flag.String("scenario", "", "path to scenario YAML (required)")
	flag.Parse()

	if *scenarioPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := observability.NewLogger(config.LoggingConfig{Level: "warn", Format: "console"})
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	store, err := refdata.LoadStore(*contentDir)
	if err != nil {
		log.Fatalf("loading reference tables: %v", err)
	}

	data, err := os.ReadFile(*scenarioPath)
	if err != nil {
		log.Fatalf("reading scenario: %v", err)
	}
	var sc scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		log.Fatalf("parsing scenario: %v", err)
	}

	in := toInput(sc)
	result, err := engine.New(store, logger).Evaluate(in)
	if err != nil {
		log.Fatalf("evaluating scenario: %v", err)
	}

	fmt.Println(engine.FormatResult(result))
}

func toInput(sc scenario) engine.Input {
	a := sc.Attacker
	t := sc.Target

	return engine.Input{
		Attacker: snapshot.Attacker{
			Champion:     snapshot.CanonicalKey(a.Champion),
			ChampionName: a.Champion,
			Level:        a.Level,
			TotalAD:      a.TotalAD,
			AP:           a.AP,
			Lethality:    a.Lethality,
			ArmorPenPct:  a.ArmorPenPct,
			MagicPenFlat: a.MagicPenFlat,
			MagicPenPct:  a.MagicPenPct,
			Ranks: snapshot.AbilityRanks{
				Q: a.Ranks["q"],
				W: a.Ranks["w"],
				E: a.Ranks["e"],
				R: a.Ranks["r"],
			},
			Items:      toItems(a.Items),
			HPFraction: a.HPFraction,
		},
		Target: snapshot.Target{
			Champion:     snapshot.CanonicalKey(t.Champion),
			ChampionName: t.Champion,
			Level:        t.Level,
			Items:        toItems(t.Items),
			Summoners:    toKeys(t.Summoners),
			Dead:         t.Dead,
			Observed: snapshot.Observed{
				HPFraction: t.HPFraction,
				MaxHP:      t.MaxHP,
			},
		},
		TargetHPFraction: t.HPFraction,
		AlliesNearby:     sc.AlliesNearby,
		GameTime:         sc.GameTime,
	}
}

func toItems(names []string) []snapshot.Item {
	out := make([]snapshot.Item, 0, len(names))
	for _, n := range names {
		out = append(out, snapshot.NewItem(n))
	}
	return out
}

func toKeys(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, snapshot.CanonicalKey(n))
	}
	return out
}
