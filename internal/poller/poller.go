// Package poller runs the evaluation loop: once per tick it snapshots the
// live game, picks a target, runs the estimator, and publishes the
// formatted frame to the overlay hub.
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/config"
	"github.com/kperrault/ganksense/internal/game/engine"
	"github.com/kperrault/ganksense/internal/game/snapshot"
	"github.com/kperrault/ganksense/internal/game/target"
	"github.com/kperrault/ganksense/internal/liveclient"
	"github.com/kperrault/ganksense/internal/overlay"
)

// SnapshotProvider supplies one tick's worth of live game state.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*liveclient.GameSnapshot, error)
}

// Publisher receives one frame per tick.
type Publisher interface {
	Publish(frame overlay.Frame)
}

// Poller is the evaluation loop. It implements the lifecycle Service
// interface.
type Poller struct {
	provider SnapshotProvider
	selector *target.Selector
	engine   *engine.Engine
	sink     Publisher
	logger   *zap.Logger
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

// New creates a Poller.
//
// Precondition: all collaborators must be non-nil; cfg must have been
// validated.
func New(
	cfg config.PollerConfig,
	provider SnapshotProvider,
	selector *target.Selector,
	eng *engine.Engine,
	sink Publisher,
	logger *zap.Logger,
) *Poller {
	return &Poller{
		provider: provider,
		selector: selector,
		engine:   eng,
		sink:     sink,
		logger:   logger,
		interval: cfg.Interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the tick loop and blocks until Stop is called.
func (p *Poller) Start() error {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("poller started",
		zap.Duration("interval", p.interval),
	)
	for {
		select {
		case <-p.stop:
			return nil
		case <-ticker.C:
			p.Tick(context.Background())
		}
	}
}

// Stop terminates the tick loop and waits for the current tick to finish.
func (p *Poller) Stop() {
	close(p.stop)
	<-p.done
}

// Tick performs one snapshot-evaluate-publish cycle. Exported so the
// simulate tool and tests can drive the loop directly.
func (p *Poller) Tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	snap, err := p.provider.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, liveclient.ErrUnavailable) {
			p.publishWaiting("waiting for game...")
			return
		}
		p.logger.Warn("snapshot failed", zap.Error(err))
		return
	}

	// Fold every fresh health reading into the last-known cache before
	// picking, so a target that just walked into fog keeps its value.
	for _, enemy := range snap.Enemies {
		if f := enemy.Observed.HPFraction; f > 0 {
			p.selector.ObserveHP(enemy.Champion, f)
		}
	}

	picked, slot, ok := p.selector.Pick(snap.Enemies)
	if !ok {
		p.publishWaiting("no living enemies")
		return
	}

	in := engine.Input{
		Attacker: snap.Attacker,
		Target:   picked,
		GameTime: snap.GameTime,
	}
	if picked.Observed.HPFraction <= 0 {
		if f, known := p.selector.KnownHP(picked.Champion); known {
			in.TargetHPFraction = f
		}
	}

	result, err := p.engine.Evaluate(in)
	if err != nil {
		// Skip the tick; the next snapshot starts clean.
		p.logger.Error("evaluation failed", zap.Error(err))
		return
	}

	text := slotHeader(picked, slot, len(snap.Enemies), p.selector.LockedSlot() == slot) +
		"\n" + engine.FormatResult(result)

	frame := overlay.Frame{
		EvaluationID: uuid.NewString(),
		Verdict:      string(result.Verdict),
		Paused:       result.Paused,
		Text:         text,
		GeneratedAt:  time.Now(),
	}
	p.sink.Publish(frame)

	p.logger.Debug("tick published",
		zap.String("evaluation_id", frame.EvaluationID),
		zap.String("target", result.TargetChampion),
		zap.String("verdict", frame.Verdict),
		zap.Float64("kill_ratio", result.KillRatio),
		zap.Bool("paused", result.Paused),
	)
}

// publishWaiting emits a frame with no verdict so the overlay shows a
// neutral waiting state instead of a stale evaluation.
func (p *Poller) publishWaiting(message string) {
	p.sink.Publish(overlay.Frame{
		EvaluationID: uuid.NewString(),
		Paused:       true,
		Text:         message,
		GeneratedAt:  time.Now(),
	})
}

// slotHeader renders the target line above the verdict body, e.g.
// "Target 2/5: Ahri (MIDDLE) [locked]".
func slotHeader(t snapshot.Target, slot, total int, locked bool) string {
	name := t.ChampionName
	if name == "" {
		name = t.Champion
	}
	header := fmt.Sprintf("Target %d/%d: %s", slot+1, total, name)
	if t.Position != "" {
		header += fmt.Sprintf(" (%s)", t.Position)
	}
	if locked {
		header += " [locked]"
	}
	return header
}
