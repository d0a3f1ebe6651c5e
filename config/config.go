// Package config loads the game settings and the star map layout
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/parameter"
)

// ErrInvalid marks a configuration that decoded but cannot be used
var ErrInvalid = errors.New("invalid configuration")

// DefaultPath is looked up in the working directory when no -config flag is given
const DefaultPath = "drillerjoe.toml"

//go:embed game.toml
var defaultGame []byte

// Sound configures audio output
type Sound struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	MusicVolume  float64 `toml:"music_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// Config is the game configuration
type Config struct {
	TickRate       int               `toml:"tick_rate"`
	Seed           uint64            `toml:"seed"`
	LogLevel       string            `toml:"log_level"`
	StartingHealth int               `toml:"starting_health"`
	ColorMode      string            `toml:"color_mode"`
	Sound          Sound             `toml:"sound"`
	Keys           map[string]string `toml:"keys"`

	// Source is the file the overrides came from, empty for embedded defaults only
	Source string `toml:"-"`
}

// Default returns the embedded configuration
func Default() (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(string(defaultGame), cfg); err != nil {
		return nil, fmt.Errorf("decode embedded config: %w", err)
	}
	return cfg, nil
}

// Load decodes the embedded defaults and overlays the first override file found
// An explicit path must exist; the working directory default is optional
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		if _, statErr := os.Stat(DefaultPath); statErr == nil {
			path = DefaultPath
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		cfg.Source = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if c.StartingHealth <= 0 || c.StartingHealth > parameter.PlayerMaxHealth {
		return fmt.Errorf("%w: starting_health must be in [1,%d], got %d", ErrInvalid, parameter.PlayerMaxHealth, c.StartingHealth)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q: %v", ErrInvalid, c.LogLevel, err)
	}
	switch c.ColorMode {
	case "truecolor", "256":
	default:
		return fmt.Errorf("%w: color_mode must be truecolor or 256, got %q", ErrInvalid, c.ColorMode)
	}
	if c.Sound.SampleRate <= 0 {
		return fmt.Errorf("%w: sound.sample_rate must be positive, got %d", ErrInvalid, c.Sound.SampleRate)
	}
	for name, v := range map[string]float64{"master_volume": c.Sound.MasterVolume, "music_volume": c.Sound.MusicVolume} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: sound.%s must be in [0,1], got %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// Level returns the configured log level, debug forces the debug level
func (c *Config) Level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
