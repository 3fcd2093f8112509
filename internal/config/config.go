// Package config provides Viper-based configuration loading for the GankSense overlay.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// LiveClientConfig holds Live Client Data API connection settings.
type LiveClientConfig struct {
	// BaseURL is the root of the local live-client endpoint, including the
	// /liveclientdata path segment.
	BaseURL string `mapstructure:"base_url"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `mapstructure:"timeout"`
	// InsecureSkipVerify disables TLS verification. The local endpoint
	// ships a self-signed Riot certificate, so this defaults to true.
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
}

// OverlayConfig holds overlay HTTP server settings.
type OverlayConfig struct {
	// Host is the bind address for the overlay listener.
	Host string `mapstructure:"host"`
	// Port is the TCP port for the overlay listener.
	Port int `mapstructure:"port"`
}

// Addr returns the "host:port" listen address.
//
// Postcondition: Returns a non-empty string in "host:port" format.
func (o OverlayConfig) Addr() string {
	return fmt.Sprintf("%s:%d", o.Host, o.Port)
}

// PollerConfig holds evaluation loop settings.
type PollerConfig struct {
	// Interval is the delay between evaluation ticks.
	Interval time.Duration `mapstructure:"interval"`
}

// ContentConfig holds reference-data locations.
type ContentConfig struct {
	// Dir is the directory containing the reference YAML tables.
	Dir string `mapstructure:"dir"`
	// ScriptDir is the directory of Lua combo extension scripts.
	// Empty disables scripting.
	ScriptDir string `mapstructure:"script_dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	LiveClient LiveClientConfig `mapstructure:"liveclient"`
	Overlay    OverlayConfig    `mapstructure:"overlay"`
	Poller     PollerConfig     `mapstructure:"poller"`
	Content    ContentConfig    `mapstructure:"content"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLiveClient(c.LiveClient); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateOverlay(c.Overlay); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validatePoller(c.Poller); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLiveClient(l LiveClientConfig) error {
	var errs []string
	if !strings.HasPrefix(l.BaseURL, "http://") && !strings.HasPrefix(l.BaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("liveclient.base_url must be an http(s) URL, got %q", l.BaseURL))
	}
	if l.Timeout <= 0 {
		errs = append(errs, "liveclient.timeout must be positive")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateOverlay(o OverlayConfig) error {
	var errs []string
	if o.Host == "" {
		errs = append(errs, "overlay.host must not be empty")
	}
	if o.Port < 1 || o.Port > 65535 {
		errs = append(errs, fmt.Sprintf("overlay.port must be 1-65535, got %d", o.Port))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePoller(p PollerConfig) error {
	if p.Interval < 50*time.Millisecond {
		return fmt.Errorf("poller.interval must be >= 50ms, got %s", p.Interval)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.Dir == "" {
		return fmt.Errorf("content.dir must not be empty")
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with GANKSENSE_ prefix
	v.SetEnvPrefix("GANKSENSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("liveclient.base_url", "https://127.0.0.1:2999/liveclientdata")
	v.SetDefault("liveclient.timeout", "2s")
	v.SetDefault("liveclient.insecure_skip_verify", true)

	v.SetDefault("overlay.host", "127.0.0.1")
	v.SetDefault("overlay.port", 8089)

	v.SetDefault("poller.interval", "300ms")

	v.SetDefault("content.dir", "content")
	v.SetDefault("content.script_dir", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
