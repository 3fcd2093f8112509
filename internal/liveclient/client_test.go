package liveclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kperrault/ganksense/internal/config"
	"github.com/kperrault/ganksense/internal/liveclient"
)

const activePlayerJSON = `{
	"summonerName": "Me",
	"level": 11,
	"championStats": {
		"currentHealth": 850,
		"maxHealth": 1000,
		"attackDamage": 180,
		"abilityPower": 0,
		"armorPenetrationFlat": 18,
		"armorPenetrationPercent": 0.7,
		"magicPenetrationFlat": 0,
		"magicPenetrationPercent": 1.0
	},
	"abilities": {
		"Q": {"abilityLevel": 5},
		"W": {"abilityLevel": 3},
		"E": {"abilityLevel": 1},
		"R": {"abilityLevel": 2}
	}
}`

const playerListJSON = `[
	{
		"summonerName": "Me",
		"championName": "Kha'Zix",
		"team": "ORDER",
		"level": 11,
		"position": "JUNGLE",
		"isDead": false,
		"items": [{"displayName": "Profane Hydra", "itemID": 1, "count": 1}],
		"summonerSpells": {
			"summonerSpellOne": {"displayName": "Flash", "rawDisplayName": "GeneratedTip_SummonerSpell_SummonerFlash_DisplayName"},
			"summonerSpellTwo": {"displayName": "Smite", "rawDisplayName": "GeneratedTip_SummonerSpell_SummonerSmite_DisplayName"}
		}
	},
	{
		"summonerName": "Ally",
		"championName": "Lux",
		"team": "ORDER",
		"level": 10,
		"isDead": false,
		"items": [],
		"summonerSpells": {}
	},
	{
		"summonerName": "Enemy1",
		"championName": "Master Yi",
		"team": "CHAOS",
		"level": 10,
		"position": "JUNGLE",
		"isDead": false,
		"items": [{"displayName": "Death's Dance", "itemID": 2, "count": 1}],
		"summonerSpells": {
			"summonerSpellOne": {"displayName": "Barrier", "rawDisplayName": "GeneratedTip_SummonerSpell_SummonerBarrier_DisplayName"},
			"summonerSpellTwo": {"displayName": "Nonstandard", "rawDisplayName": "weird format"}
		}
	},
	{
		"summonerName": "Enemy2",
		"championName": "Darius",
		"team": "CHAOS",
		"level": 9,
		"isDead": true,
		"items": [],
		"summonerSpells": {}
	}
]`

const gameStatsJSON = `{"gameMode": "CLASSIC", "gameTime": 912.5, "mapName": "Map11"}`

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/liveclientdata/activeplayer", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(activePlayerJSON))
	})
	mux.HandleFunc("/liveclientdata/playerlist", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(playerListJSON))
	})
	mux.HandleFunc("/liveclientdata/gamestats", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(gameStatsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) *liveclient.Client {
	t.Helper()
	return liveclient.NewClient(config.LiveClientConfig{
		BaseURL: baseURL + "/liveclientdata",
		Timeout: time.Second,
	}, zaptest.NewLogger(t))
}

func TestSnapshotAssemblesGameState(t *testing.T) {
	srv := fakeAPI(t)
	c := newClient(t, srv.URL)

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 912.5, snap.GameTime)

	a := snap.Attacker
	assert.Equal(t, "khazix", a.Champion)
	assert.Equal(t, "Kha'Zix", a.ChampionName)
	assert.Equal(t, 11, a.Level)
	assert.Equal(t, 180.0, a.TotalAD)
	assert.Equal(t, 18.0, a.Lethality)
	assert.InDelta(t, 0.3, a.ArmorPenPct, 1e-9, "0.7 reported means 30% penetration")
	assert.Equal(t, 0.0, a.MagicPenPct, "1.0 reported means no penetration")
	assert.Equal(t, 5, a.Ranks.Q)
	assert.Equal(t, 2, a.Ranks.R)
	assert.InDelta(t, 0.85, a.HPFraction, 1e-9)
	require.Len(t, a.Items, 1)
	assert.Equal(t, "profanehydra", a.Items[0].Key)

	// Only the CHAOS side is an enemy; the ORDER ally is excluded.
	require.Len(t, snap.Enemies, 2)
	yi := snap.Enemies[0]
	assert.Equal(t, "masteryi", yi.Champion)
	assert.Equal(t, "JUNGLE", yi.Position)
	require.Len(t, yi.Items, 1)
	assert.Equal(t, "deathsdance", yi.Items[0].Key)
	require.Len(t, yi.Summoners, 2)
	assert.Equal(t, "summonerbarrier", yi.Summoners[0])
	assert.Equal(t, "summonernonstandard", yi.Summoners[1], "falls back to the display name")

	assert.True(t, snap.Enemies[1].Dead)
}

func TestSnapshotUnreachableAPI(t *testing.T) {
	c := newClient(t, "http://127.0.0.1:1")

	_, err := c.Snapshot(context.Background())
	assert.ErrorIs(t, err, liveclient.ErrUnavailable)
}

func TestSnapshotNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	_, err := c.Snapshot(context.Background())
	assert.ErrorIs(t, err, liveclient.ErrUnavailable)
}

func TestSnapshotActivePlayerNotInList(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/liveclientdata/activeplayer", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"summonerName": "Ghost"}`))
	})
	mux.HandleFunc("/liveclientdata/playerlist", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(playerListJSON))
	})
	mux.HandleFunc("/liveclientdata/gamestats", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(gameStatsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	_, err := c.Snapshot(context.Background())
	assert.ErrorIs(t, err, liveclient.ErrUnavailable)
}

func TestGameActiveAndGameTime(t *testing.T) {
	srv := fakeAPI(t)
	c := newClient(t, srv.URL)

	assert.True(t, c.GameActive(context.Background()))

	gt, err := c.GameTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 912.5, gt)

	dead := newClient(t, "http://127.0.0.1:1")
	assert.False(t, dead.GameActive(context.Background()))
}
