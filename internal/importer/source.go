package importer

import "github.com/kperrault/ganksense/internal/refdata"

// ChampionEntry is the common intermediate format produced by all Source
// implementations: one champion's canonical key, display name, and
// defensive baseline.
type ChampionEntry struct {
	// Key is the canonical table key ("khazix", "drmundo").
	Key string
	// Name is the champion's display name as the source spells it.
	Name string
	// Stats is the level-1 baseline plus per-level growth.
	Stats refdata.ChampionBaseStats
}

// Source loads champion stats from a format-specific source path and
// produces entries ready to be written as a champions table.
//
// Precondition: sourcePath must exist and contain the expected layout for
// the format.
// Postcondition: returns at least one entry, or a non-nil error.
type Source interface {
	Load(sourcePath string) ([]ChampionEntry, error)
}
