// Package config loads sprout's layered configuration: struct defaults, then
// an optional YAML file, then SPROUT_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/sprout/internal/logging"
	"github.com/alexanderramin/sprout/internal/places"
	"github.com/alexanderramin/sprout/internal/recommend"
	"github.com/alexanderramin/sprout/internal/venue"
)

const (
	// PathEnvVar overrides the config file location.
	PathEnvVar = "SPROUT_CONFIG"
	envPrefix  = "SPROUT_"
)

// DefaultPaths are searched in order when PathEnvVar is unset.
var DefaultPaths = []string{"sprout.yaml", "sprout.yml"}

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Log      LogConfig      `koanf:"log"`
	Places   places.Config  `koanf:"places"`
	Engine   EngineConfig   `koanf:"engine"`
}

type DatabaseConfig struct {
	// Path defaults to ~/.sprout/sprout.db.
	Path string `koanf:"path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// EngineConfig tunes the selector and the venue fan-out.
type EngineConfig struct {
	MinFeasibility   float64       `koanf:"min_feasibility"`
	EligibleFloor    int           `koanf:"eligible_floor"`
	MinSelected      int           `koanf:"min_selected"`
	MaxSelected      int           `koanf:"max_selected"`
	TopWeak          int           `koanf:"top_weak"`
	StrengthSlots    int           `koanf:"strength_slots"`
	StrengthMinScore float64       `koanf:"strength_min_score"`
	VenueConcurrency int           `koanf:"venue_concurrency"`
	VenueTimeout     time.Duration `koanf:"venue_timeout"`
}

func defaultConfig() *Config {
	sel := recommend.DefaultSelectorOptions()
	v := venue.DefaultOptions()
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Log:      LogConfig{Level: "warn", Format: "console"},
		Places:   places.DefaultConfig(),
		Engine: EngineConfig{
			MinFeasibility:   sel.MinFeasibility,
			EligibleFloor:    sel.EligibleFloor,
			MinSelected:      sel.MinSelected,
			MaxSelected:      sel.MaxSelected,
			TopWeak:          sel.TopWeak,
			StrengthSlots:    sel.StrengthSlots,
			StrengthMinScore: sel.StrengthMinScore,
			VenueConcurrency: v.Concurrency,
			VenueTimeout:     v.Timeout,
		},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, in increasing priority.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// SPROUT_PLACES__API_KEY -> places.api_key
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling configuration: %w", err)
	}
	if cfg.Database.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.Database.Path = filepath.Join(home, ".sprout", "sprout.db")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func envTransform(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	if key == "CONFIG" {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

func findConfigFile() string {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks ranges the engine relies on.
func (c *Config) Validate() error {
	e := c.Engine
	switch {
	case e.MinSelected < 0 || e.MaxSelected < 1:
		return fmt.Errorf("engine.max_selected must be at least 1")
	case e.MinSelected > e.MaxSelected:
		return fmt.Errorf("engine.min_selected (%d) exceeds engine.max_selected (%d)", e.MinSelected, e.MaxSelected)
	case e.MinFeasibility < 0 || e.MinFeasibility > 100:
		return fmt.Errorf("engine.min_feasibility must be within [0,100]")
	case e.VenueConcurrency < 0:
		return fmt.Errorf("engine.venue_concurrency must not be negative")
	}
	if c.Places.Enabled {
		if c.Places.APIKey == "" {
			return fmt.Errorf("places.api_key is required when places.enabled is true")
		}
		if c.Places.Endpoint == "" {
			return fmt.Errorf("places.endpoint is required when places.enabled is true")
		}
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// Logging converts the log section for logging.Init.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Log.Level
	lc.Format = strings.ToLower(c.Log.Format)
	lc.Caller = c.Log.Caller
	return lc
}

// Selector converts the engine section into selector options.
func (c *Config) Selector() recommend.SelectorOptions {
	return recommend.SelectorOptions{
		MinFeasibility:   c.Engine.MinFeasibility,
		EligibleFloor:    c.Engine.EligibleFloor,
		MinSelected:      c.Engine.MinSelected,
		MaxSelected:      c.Engine.MaxSelected,
		TopWeak:          c.Engine.TopWeak,
		StrengthSlots:    c.Engine.StrengthSlots,
		StrengthMinScore: c.Engine.StrengthMinScore,
	}
}

// Venue converts the engine and places sections into enrichment options.
func (c *Config) Venue() venue.Options {
	return venue.Options{
		Concurrency:  c.Engine.VenueConcurrency,
		RadiusMeters: c.Places.RadiusMeters,
		Timeout:      c.Engine.VenueTimeout,
	}
}
