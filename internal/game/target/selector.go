// Package target owns the selection state the estimator core deliberately
// does not: which enemy slot is locked, and the last known health fraction
// per champion. The core stays purely functional per call; this package is
// the caller-side memory fed into each evaluation.
package target

import (
	"sync"

	"github.com/kperrault/ganksense/internal/game/snapshot"
)

// AutoSlot marks automatic target selection (lowest known health).
const AutoSlot = -1

// Selector picks the evaluation target each tick. Safe for concurrent use;
// hotkey handlers may lock slots while the poller reads.
type Selector struct {
	mu          sync.Mutex
	lockedSlot  int
	lastKnownHP map[string]float64
}

// NewSelector creates a Selector in automatic mode.
func NewSelector() *Selector {
	return &Selector{
		lockedSlot:  AutoSlot,
		lastKnownHP: make(map[string]float64),
	}
}

// Lock pins target selection to the given enemy slot index.
//
// Precondition: slot >= 0.
func (s *Selector) Lock(slot int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockedSlot = slot
}

// Unlock returns the selector to automatic lowest-health selection.
func (s *Selector) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockedSlot = AutoSlot
}

// LockedSlot returns the pinned slot index, or AutoSlot.
func (s *Selector) LockedSlot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lockedSlot
}

// ObserveHP records a fresh health reading for a champion. Invalid
// fractions are ignored.
func (s *Selector) ObserveHP(championKey string, fraction float64) {
	if fraction <= 0 || fraction > 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastKnownHP[championKey] = fraction
}

// KnownHP returns the last recorded health fraction for a champion.
func (s *Selector) KnownHP(championKey string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.lastKnownHP[championKey]
	return f, ok
}

// Pick chooses the evaluation target from the enemy list. A locked slot
// wins while its occupant is alive; otherwise the living enemy with the
// lowest known health fraction is chosen (unknown health counts as full).
//
// Postcondition: ok is false iff no living enemy exists; slot is the index
// into enemies of the chosen target.
func (s *Selector) Pick(enemies []snapshot.Target) (picked snapshot.Target, slot int, ok bool) {
	s.mu.Lock()
	locked := s.lockedSlot
	s.mu.Unlock()

	if locked >= 0 && locked < len(enemies) && !enemies[locked].Dead {
		return enemies[locked], locked, true
	}

	bestSlot := -1
	bestHP := 2.0
	for i, e := range enemies {
		if e.Dead {
			continue
		}
		hp := s.knownOrFull(e)
		if hp < bestHP {
			bestHP = hp
			bestSlot = i
		}
	}
	if bestSlot < 0 {
		return snapshot.Target{}, -1, false
	}
	return enemies[bestSlot], bestSlot, true
}

// knownOrFull resolves an enemy's best-known health fraction, preferring a
// fresh observed reading over the cache.
func (s *Selector) knownOrFull(e snapshot.Target) float64 {
	if f := e.Observed.HPFraction; f > 0 && f <= 1 {
		return f
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.lastKnownHP[e.Champion]; ok {
		return f
	}
	return 1
}
