package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime settings
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Sound   SoundConfig   `yaml:"sound"`
	Log     LogConfig     `yaml:"log"`
	Display DisplayConfig `yaml:"display"`
}

type GameConfig struct {
	Seed         uint64 `yaml:"seed"`          // 0 = time based
	FoodAttempts int    `yaml:"food_attempts"` // Random probes before the free-cell scan
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"` // Empty discards logs; the terminal owns stdout
}

type DisplayConfig struct {
	Color string `yaml:"color"` // auto | mono
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Game.FoodAttempts < 0 {
		return fmt.Errorf("%w: game.food_attempts %d is negative", ErrInvalidConfig, c.Game.FoodAttempts)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume %v outside 0..1", ErrInvalidConfig, c.Sound.Volume)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch c.Display.Color {
	case "auto", "mono":
	default:
		return fmt.Errorf("%w: display.color %q", ErrInvalidConfig, c.Display.Color)
	}
	return nil
}
