package refdata

import "fmt"

// Tables is the raw table set a Store is constructed from. All maps are
// keyed by canonical keys (see snapshot.CanonicalKey).
type Tables struct {
	Champions   map[string]ChampionBaseStats
	Combos      map[string]ComboDefinition
	Items       map[string]ItemDefensiveStats
	ActiveItems map[string]ActiveDamageItem
	Modifiers   map[string]Modifier
	// CooldownFlags lists items whose active effect may or may not be up,
	// keyed by item key with an advisory description.
	CooldownFlags map[string]string
}

// Store is the immutable reference-data lookup service. Construction
// happens once at startup; the Store is safe for concurrent reads and is
// never mutated afterwards.
type Store struct {
	champions     map[string]ChampionBaseStats
	combos        map[string]ComboDefinition
	items         map[string]ItemDefensiveStats
	activeItems   map[string]ActiveDamageItem
	modifiers     map[string]Modifier
	cooldownFlags map[string]string
}

// NewStore validates the tables and builds an immutable Store.
//
// Precondition: t.Champions and t.Combos must contain the "_default" key.
// Postcondition: Returns a Store with private copies of every table, or a
// non-nil error naming the first violated invariant.
func NewStore(t Tables) (*Store, error) {
	if _, ok := t.Champions[DefaultKey]; !ok {
		return nil, fmt.Errorf("champion table missing %q fallback entry", DefaultKey)
	}
	if _, ok := t.Combos[DefaultKey]; !ok {
		return nil, fmt.Errorf("combo table missing %q fallback entry", DefaultKey)
	}

	for key, c := range t.Champions {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("champion %q: %w", key, err)
		}
	}
	for key, c := range t.Combos {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("combo %q: %w", key, err)
		}
	}
	for key, i := range t.Items {
		if err := i.Validate(); err != nil {
			return nil, fmt.Errorf("item %q: %w", key, err)
		}
	}
	for key, a := range t.ActiveItems {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("active item %q: %w", key, err)
		}
	}
	for key, m := range t.Modifiers {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("modifier %q: %w", key, err)
		}
	}

	s := &Store{
		champions:     make(map[string]ChampionBaseStats, len(t.Champions)),
		combos:        make(map[string]ComboDefinition, len(t.Combos)),
		items:         make(map[string]ItemDefensiveStats, len(t.Items)),
		activeItems:   make(map[string]ActiveDamageItem, len(t.ActiveItems)),
		modifiers:     make(map[string]Modifier, len(t.Modifiers)),
		cooldownFlags: make(map[string]string, len(t.CooldownFlags)),
	}
	for k, v := range t.Champions {
		s.champions[k] = v
	}
	for k, v := range t.Combos {
		s.combos[k] = v
	}
	for k, v := range t.Items {
		s.items[k] = v
	}
	for k, v := range t.ActiveItems {
		s.activeItems[k] = v
	}
	for k, v := range t.Modifiers {
		s.modifiers[k] = v
	}
	for k, v := range t.CooldownFlags {
		s.cooldownFlags[k] = v
	}
	return s, nil
}

// Champion returns the base stats for the given canonical champion key,
// falling back to the default entry for unknown champions.
//
// Postcondition: Never fails; unknown keys return the "_default" entry.
func (s *Store) Champion(key string) ChampionBaseStats {
	if c, ok := s.champions[key]; ok {
		return c
	}
	return s.champions[DefaultKey]
}

// Combo returns the combo definition for the given canonical champion key,
// falling back to the default combo for unknown champions.
//
// Postcondition: Never fails; unknown keys return the "_default" entry.
func (s *Store) Combo(key string) ComboDefinition {
	if c, ok := s.combos[key]; ok {
		return c
	}
	return s.combos[DefaultKey]
}

// Item returns the defensive stats for the given canonical item key.
// Unknown items report ok=false and contribute nothing.
func (s *Store) Item(key string) (ItemDefensiveStats, bool) {
	i, ok := s.items[key]
	return i, ok
}

// ActiveItem returns the active damage effect for the given canonical item
// key. Unknown items report ok=false.
func (s *Store) ActiveItem(key string) (ActiveDamageItem, bool) {
	a, ok := s.activeItems[key]
	return a, ok
}

// Modifier returns the summoner-spell or rune adjustment for the given
// canonical key. Unknown modifiers report ok=false.
func (s *Store) Modifier(key string) (Modifier, bool) {
	m, ok := s.modifiers[key]
	return m, ok
}

// CooldownFlag returns the advisory description for items whose active
// state is unknowable at evaluation time.
func (s *Store) CooldownFlag(key string) (string, bool) {
	d, ok := s.cooldownFlags[key]
	return d, ok
}

// HasChampion reports whether key has a dedicated stat entry (as opposed
// to resolving through the fallback).
func (s *Store) HasChampion(key string) bool {
	_, ok := s.champions[key]
	return ok && key != DefaultKey
}

// HasCombo reports whether key has a dedicated combo entry.
func (s *Store) HasCombo(key string) bool {
	_, ok := s.combos[key]
	return ok && key != DefaultKey
}

// ChampionCount returns the number of champion entries, fallback included.
func (s *Store) ChampionCount() int { return len(s.champions) }

// ComboCount returns the number of combo entries, fallback included.
func (s *Store) ComboCount() int { return len(s.combos) }

// ItemCount returns the number of defensive item entries.
func (s *Store) ItemCount() int { return len(s.items) }

// ModifierCount returns the number of modifier entries.
func (s *Store) ModifierCount() int { return len(s.modifiers) }
