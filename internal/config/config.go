package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the application configuration
type Config struct {
	Paths *Paths

	// Touching lets an edge-adjacent target count as inside the region.
	Touching bool
	// Root names the zone used as reference region; empty uses the viewport.
	Root string

	FillerLines int
	LogLevel    string
}

type fileConfig struct {
	Observer struct {
		Touching *bool   `json:"touching"`
		Root     *string `json:"root"`
	} `json:"observer"`
	Demo struct {
		FillerLines *int `json:"filler_lines"`
	} `json:"demo"`
	LogLevel *string `json:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsFor(paths), nil
}

func defaultsFor(paths *Paths) *Config {
	return &Config{
		Paths:       paths,
		Touching:    false,
		FillerLines: 40,
		LogLevel:    "info",
	}
}

// Load loads overrides from ~/.enterexit/config.json if present
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom applies the config file under paths to the defaults. A missing
// file yields the defaults.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsFor(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.ConfigPath, err)
	}

	if raw.Observer.Touching != nil {
		cfg.Touching = *raw.Observer.Touching
	}
	if raw.Observer.Root != nil {
		cfg.Root = *raw.Observer.Root
	}
	if raw.Demo.FillerLines != nil && *raw.Demo.FillerLines > 0 {
		cfg.FillerLines = *raw.Demo.FillerLines
	}
	if raw.LogLevel != nil && *raw.LogLevel != "" {
		cfg.LogLevel = *raw.LogLevel
	}
	return cfg, nil
}
