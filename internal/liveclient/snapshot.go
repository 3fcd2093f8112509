package liveclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/kperrault/ganksense/internal/game/snapshot"
)

// GameSnapshot is one tick's worth of live match state: the local player's
// combat state, every enemy, and the match clock.
type GameSnapshot struct {
	Attacker snapshot.Attacker
	Enemies  []snapshot.Target
	GameTime float64
}

// Snapshot fetches the active player, the player list, and the game clock
// and assembles them into a GameSnapshot with canonical keys applied.
//
// Postcondition: Returns ErrUnavailable (wrapped) when any required
// endpoint cannot be reached; never returns a partially zeroed snapshot.
func (c *Client) Snapshot(ctx context.Context) (*GameSnapshot, error) {
	var active apiActivePlayer
	if err := c.get(ctx, "activeplayer", &active); err != nil {
		return nil, err
	}
	var players []apiPlayer
	if err := c.get(ctx, "playerlist", &players); err != nil {
		return nil, err
	}
	var stats apiGameStats
	if err := c.get(ctx, "gamestats", &stats); err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("empty player list: %w", ErrUnavailable)
	}

	// The activeplayer endpoint does not carry the champion name or
	// team; both come from the matching playerlist entry.
	var self *apiPlayer
	for i := range players {
		if players[i].SummonerName == active.SummonerName {
			self = &players[i]
			break
		}
	}
	if self == nil {
		return nil, fmt.Errorf("active player %q not in player list: %w", active.SummonerName, ErrUnavailable)
	}

	attacker := buildAttacker(active, self)

	enemyTeam := "CHAOS"
	if self.Team == "CHAOS" {
		enemyTeam = "ORDER"
	}
	var enemies []snapshot.Target
	for i := range players {
		if players[i].Team == enemyTeam {
			enemies = append(enemies, buildTarget(players[i]))
		}
	}

	return &GameSnapshot{
		Attacker: attacker,
		Enemies:  enemies,
		GameTime: stats.GameTime,
	}, nil
}

func buildAttacker(active apiActivePlayer, self *apiPlayer) snapshot.Attacker {
	cs := active.ChampionStats

	hpFrac := 1.0
	if cs.MaxHealth > 0 {
		hpFrac = cs.CurrentHealth / cs.MaxHealth
	}

	return snapshot.Attacker{
		Champion:     snapshot.CanonicalKey(self.ChampionName),
		ChampionName: self.ChampionName,
		Level:        active.Level,
		TotalAD:      cs.AttackDamage,
		AP:           cs.AbilityPower,
		// The API reports percent pen inverted (1.0 = none).
		ArmorPenPct:  invertPenPercent(cs.ArmorPenetrationPercent),
		MagicPenFlat: cs.MagicPenetrationFlat,
		MagicPenPct:  invertPenPercent(cs.MagicPenetrationPercent),
		Lethality:    cs.ArmorPenetrationFlat,
		Ranks: snapshot.AbilityRanks{
			Q: active.Abilities.Q.AbilityLevel,
			W: active.Abilities.W.AbilityLevel,
			E: active.Abilities.E.AbilityLevel,
			R: active.Abilities.R.AbilityLevel,
		},
		Items:      buildItems(self.Items),
		Summoners:  buildSummoners(self.SummonerSpells),
		HPFraction: hpFrac,
	}
}

func buildTarget(p apiPlayer) snapshot.Target {
	return snapshot.Target{
		Champion:     snapshot.CanonicalKey(p.ChampionName),
		ChampionName: p.ChampionName,
		SummonerName: p.SummonerName,
		Level:        p.Level,
		Position:     p.Position,
		Items:        buildItems(p.Items),
		Summoners:    buildSummoners(p.SummonerSpells),
		Dead:         p.IsDead,
	}
}

func buildItems(items []apiItem) []snapshot.Item {
	out := make([]snapshot.Item, 0, len(items))
	for _, it := range items {
		if it.DisplayName == "" {
			continue
		}
		out = append(out, snapshot.NewItem(it.DisplayName))
	}
	return out
}

func buildSummoners(spells apiSummonerSpells) []string {
	var out []string
	for _, s := range []apiSummonerSpell{spells.One, spells.Two} {
		if key := summonerKey(s); key != "" {
			out = append(out, key)
		}
	}
	return out
}

// summonerKey extracts the canonical modifier key for a summoner spell.
// The raw display name looks like
// "GeneratedTip_SummonerSpell_SummonerBarrier_DisplayName"; the segment
// starting with "Summoner" is the stable identifier. The plain display
// name ("Barrier") is the fallback.
func summonerKey(s apiSummonerSpell) string {
	for _, part := range strings.Split(s.RawDisplayName, "_") {
		if strings.HasPrefix(part, "Summoner") && part != "SummonerSpell" {
			return snapshot.CanonicalKey(part)
		}
	}
	if s.DisplayName != "" {
		return snapshot.CanonicalKey("Summoner" + s.DisplayName)
	}
	return ""
}

// invertPenPercent converts the API's 1.0-means-none convention into a
// fractional penetration in [0,1]. An absent field decodes as 0, which
// must mean "no penetration", not 100%.
func invertPenPercent(reported float64) float64 {
	if reported <= 0 || reported > 1 {
		return 0
	}
	return 1 - reported
}
