package liveclient

// Raw Live Client Data API payload shapes. Only the fields the snapshot
// builder consumes are declared.

type apiGameStats struct {
	GameMode string  `json:"gameMode"`
	GameTime float64 `json:"gameTime"`
	MapName  string  `json:"mapName"`
}

type apiActivePlayer struct {
	SummonerName  string           `json:"summonerName"`
	Level         int              `json:"level"`
	ChampionStats apiChampionStats `json:"championStats"`
	Abilities     apiAbilities     `json:"abilities"`
}

type apiChampionStats struct {
	CurrentHealth float64 `json:"currentHealth"`
	MaxHealth     float64 `json:"maxHealth"`
	AttackDamage  float64 `json:"attackDamage"`
	AbilityPower  float64 `json:"abilityPower"`
	// ArmorPenetrationFlat doubles as lethality in the live API.
	ArmorPenetrationFlat float64 `json:"armorPenetrationFlat"`
	// ArmorPenetrationPercent is reported inverted: 1.0 means no
	// penetration, 0.7 means 30%.
	ArmorPenetrationPercent float64 `json:"armorPenetrationPercent"`
	MagicPenetrationFlat    float64 `json:"magicPenetrationFlat"`
	MagicPenetrationPercent float64 `json:"magicPenetrationPercent"`
}

type apiAbilities struct {
	Q apiAbility `json:"Q"`
	W apiAbility `json:"W"`
	E apiAbility `json:"E"`
	R apiAbility `json:"R"`
}

type apiAbility struct {
	AbilityLevel int `json:"abilityLevel"`
}

type apiPlayer struct {
	SummonerName   string            `json:"summonerName"`
	ChampionName   string            `json:"championName"`
	Team           string            `json:"team"`
	Level          int               `json:"level"`
	Position       string            `json:"position"`
	IsDead         bool              `json:"isDead"`
	RespawnTimer   float64           `json:"respawnTimer"`
	Items          []apiItem         `json:"items"`
	SummonerSpells apiSummonerSpells `json:"summonerSpells"`
}

type apiItem struct {
	DisplayName string `json:"displayName"`
	ItemID      int    `json:"itemID"`
	Count       int    `json:"count"`
}

type apiSummonerSpells struct {
	One apiSummonerSpell `json:"summonerSpellOne"`
	Two apiSummonerSpell `json:"summonerSpellTwo"`
}

type apiSummonerSpell struct {
	DisplayName    string `json:"displayName"`
	RawDisplayName string `json:"rawDisplayName"`
}
