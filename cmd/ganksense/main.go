// Package main provides the GankSense binary: it polls the local Live
// Client Data API, runs the burst-kill estimator, and serves the verdict
// overlay over HTTP/WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/config"
	"github.com/kperrault/ganksense/internal/game/engine"
	"github.com/kperrault/ganksense/internal/game/target"
	"github.com/kperrault/ganksense/internal/liveclient"
	"github.com/kperrault/ganksense/internal/observability"
	"github.com/kperrault/ganksense/internal/overlay"
	"github.com/kperrault/ganksense/internal/poller"
	"github.com/kperrault/ganksense/internal/refdata"
	"github.com/kperrault/ganksense/internal/scripting"
	"github.com/kperrault/ganksense/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "override content directory for reference YAML tables")
	scriptDir := flag.String("scripts", "", "override directory of Lua combo extension scripts")
	lockSlot := flag.Int("lock", target.AutoSlot, "lock target selection to an enemy slot (0-4); -1 = auto")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}
	if *scriptDir != "" {
		cfg.Content.ScriptDir = *scriptDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting ganksense",
		zap.String("live_client", cfg.LiveClient.BaseURL),
		zap.String("overlay_addr", cfg.Overlay.Addr()),
	)

	// Load reference tables.
	loadStart := time.Now()
	tables, err := refdata.LoadDir(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading reference tables", zap.Error(err))
	}

	// Merge Lua combo extensions before the store freezes the tables.
	if cfg.Content.ScriptDir != "" {
		if info, statErr := os.Stat(cfg.Content.ScriptDir); statErr == nil && info.IsDir() {
			extra, err := scripting.LoadComboExtensions(cfg.Content.ScriptDir, 0, logger)
			if err != nil {
				logger.Fatal("loading combo extensions", zap.Error(err))
			}
			for key, combo := range extra {
				tables.Combos[key] = combo
			}
		} else {
			logger.Warn("script dir not found, skipping",
				zap.String("dir", cfg.Content.ScriptDir),
			)
		}
	}

	store, err := refdata.NewStore(tables)
	if err != nil {
		logger.Fatal("building reference store", zap.Error(err))
	}
	logger.Info("reference tables loaded",
		zap.Int("champions", store.ChampionCount()),
		zap.Int("combos", store.ComboCount()),
		zap.Int("items", store.ItemCount()),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	// Assemble the pipeline.
	client := liveclient.NewClient(cfg.LiveClient, logger)
	selector := target.NewSelector()
	if *lockSlot >= 0 {
		selector.Lock(*lockSlot)
		logger.Info("target slot locked", zap.Int("slot", *lockSlot))
	}
	eng := engine.New(store, logger)
	hub := overlay.NewHub(logger)
	overlaySrv := overlay.NewServer(cfg.Overlay, hub, logger)
	loop := poller.New(cfg.Poller, client, selector, eng, hub, logger)

	if client.GameActive(ctx) {
		logger.Info("live game detected")
	} else {
		logger.Info("no live game yet, overlay will wait")
	}

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("overlay", overlaySrv)
	lifecycle.Add("poller", loop)

	logger.Info("ganksense initialized",
		zap.Duration("startup", time.Since(start)),
		zap.String("overlay_url", fmt.Sprintf("http://%s/", cfg.Overlay.Addr())),
	)

	if err := lifecycle.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
