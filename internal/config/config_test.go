package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		LiveClient: LiveClientConfig{
			BaseURL:            "https://127.0.0.1:2999/liveclientdata",
			Timeout:            2 * time.Second,
			InsecureSkipVerify: true,
		},
		Overlay: OverlayConfig{Host: "127.0.0.1", Port: 8089},
		Poller:  PollerConfig{Interval: 300 * time.Millisecond},
		Content: ContentConfig{Dir: "content"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejectsBadBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.LiveClient.BaseURL = "127.0.0.1:2999"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsZeroTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.LiveClient.Timeout = 0
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyOverlayHost(t *testing.T) {
	cfg := validConfig()
	cfg.Overlay.Host = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsTinyPollInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Poller.Interval = 10 * time.Millisecond
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyContentDir(t *testing.T) {
	cfg := validConfig()
	cfg.Content.Dir = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())
}

func TestOverlayAddr(t *testing.T) {
	o := OverlayConfig{Host: "127.0.0.1", Port: 8089}
	assert.Equal(t, "127.0.0.1:8089", o.Addr())
}

func TestLoadReadsFileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("overlay:\n  port: 9100\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Overlay.Port)
	// Everything else falls back to defaults.
	assert.Equal(t, "https://127.0.0.1:2999/liveclientdata", cfg.LiveClient.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.LiveClient.Timeout)
	assert.True(t, cfg.LiveClient.InsecureSkipVerify)
	assert.Equal(t, 300*time.Millisecond, cfg.Poller.Interval)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: verbose\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

// Property-based tests

func TestPropertyValidOverlayPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.IntRange(1, 65535).Draw(t, "port")
		cfg := validConfig()
		cfg.Overlay.Port = port
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid port %d rejected: %v", port, err)
		}
	})
}

func TestPropertyInvalidOverlayPortRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		port := rapid.OneOf(
			rapid.IntRange(-1000, 0),
			rapid.IntRange(65536, 100000),
		).Draw(t, "port")
		cfg := validConfig()
		cfg.Overlay.Port = port
		if err := cfg.Validate(); err == nil {
			t.Fatalf("invalid port %d accepted", port)
		}
	})
}

func TestPropertyPollIntervalFloor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ms := rapid.IntRange(50, 10_000).Draw(t, "interval_ms")
		cfg := validConfig()
		cfg.Poller.Interval = time.Duration(ms) * time.Millisecond
		if err := cfg.Validate(); err != nil {
			t.Fatalf("valid interval %dms rejected: %v", ms, err)
		}
	})
}
