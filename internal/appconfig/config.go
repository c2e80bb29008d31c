// Package appconfig loads and validates the host daemon's on-disk
// configuration, distinct from the core engine.EngineConfig: this layer
// owns file I/O, defaults, and user-facing validation errors, none of
// which the engine package is allowed to do.
package appconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the daemon's TOML-backed configuration file shape.
type Config struct {
	InputMethod            string `toml:"input_method"`
	ToneStrategy           string `toml:"tone_strategy"`
	UseModernTonePlacement bool   `toml:"use_modern_tone_placement"`
	Enabled                bool   `toml:"enabled"`
	SmartMode              bool   `toml:"smart_mode"`
	InstantRestore         bool   `toml:"instant_restore"`
	EscRestore             bool   `toml:"esc_restore"`
	ShortcutsEnabled       bool   `toml:"shortcuts_enabled"`
	MaxHistorySize         int    `toml:"max_history_size"`
	Encoding               string `toml:"encoding"`
	ShortcutsFile          string `toml:"shortcuts_file"`
	LogLevel               string `toml:"log_level"`
}

// ErrInvalidConfig reports a semantically invalid configuration value.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("appconfig: invalid %s: %s", e.Field, e.Reason)
}

// Default returns the daemon's default configuration.
func Default() Config {
	return Config{
		InputMethod:            "Telex",
		ToneStrategy:           "auto",
		UseModernTonePlacement: true,
		Enabled:                true,
		SmartMode:              true,
		InstantRestore:         true,
		EscRestore:             true,
		ShortcutsEnabled:       true,
		MaxHistorySize:         8,
		Encoding:               "UTF-8",
		LogLevel:               "info",
	}
}

// Load reads and parses a TOML file at path, filling unset fields from
// Default, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("appconfig: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("appconfig: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values a TOML parser can't: this is where a bad
// config is actually rejected, with a message a human can act on. Unlike
// engine.EngineConfig.Normalize (which silently clamps), the host-facing
// config layer is expected to fail loudly at startup.
func (c Config) Validate() error {
	switch c.InputMethod {
	case "Telex", "VNI", "Plain":
	default:
		return &ErrInvalidConfig{Field: "input_method", Reason: "must be \"Telex\", \"VNI\" or \"Plain\""}
	}
	switch c.ToneStrategy {
	case "auto", "modern", "traditional":
	default:
		return &ErrInvalidConfig{Field: "tone_strategy", Reason: "must be \"auto\", \"modern\" or \"traditional\""}
	}
	if c.MaxHistorySize <= 0 {
		return &ErrInvalidConfig{Field: "max_history_size", Reason: "must be positive"}
	}
	switch c.Encoding {
	case "UTF-8", "TCVN3", "VNI-legacy", "CP1258":
	default:
		return &ErrInvalidConfig{Field: "encoding", Reason: "must be one of UTF-8, TCVN3, VNI-legacy, CP1258"}
	}
	return nil
}
