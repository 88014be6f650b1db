// Package config provides configuration loading for the valuekit CLI.
package config

import (
	"fmt"
	"slices"
)

// Capacities lists the CopyString capacities the CLI can instantiate.
var Capacities = []int{8, 16, 32, 64, 128, 256}

// Config is the CLI configuration.
type Config struct {
	Log        LogConfig        `koanf:"log"`
	CopyString CopyStringConfig `koanf:"copystring"`
	Output     OutputConfig     `koanf:"output"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CopyStringConfig controls the copystring command.
type CopyStringConfig struct {
	Capacity int `koanf:"capacity"`
}

// OutputConfig controls how commands print results.
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Log:        LogConfig{Level: "info", Format: "console"},
		CopyString: CopyStringConfig{Capacity: 32},
		Output:     OutputConfig{Format: "text"},
	}
}

// applyDefaults fills zero fields from Default.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.CopyString.Capacity == 0 {
		cfg.CopyString.Capacity = def.CopyString.Capacity
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
}

// Validate checks every field against the supported values.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q: must be console or json", c.Log.Format)
	}
	if !slices.Contains(Capacities, c.CopyString.Capacity) {
		return fmt.Errorf("copystring.capacity %d: must be one of %v", c.CopyString.Capacity, Capacities)
	}
	switch c.Output.Format {
	case "text", "json", "yaml", "toml":
	default:
		return fmt.Errorf("output.format %q: must be text, json, yaml or toml", c.Output.Format)
	}
	return nil
}
