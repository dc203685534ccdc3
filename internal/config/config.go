// Package config loads the optional JSON settings file of the gosurvey CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipparndt/gosurvey/pkg/geometry"
	"github.com/philipparndt/gosurvey/pkg/linalg"
)

const (
	DefaultMaxTripletPoints = 200
	DefaultDecimals         = 3
	DefaultWatchDebounce    = 300 * time.Millisecond

	maxFileSize = 1 * 1024 * 1024 // 1MB
)

// Config holds calculation tolerances and output settings. Unset fields fall
// back to the defaults returned by the Get* methods, so partial files are safe.
type Config struct {
	CollinearEps     *float64 `json:"collinear_eps,omitempty"`
	SingularEps      *float64 `json:"singular_eps,omitempty"`
	MaxTripletPoints *int     `json:"max_triplet_points,omitempty"`
	Decimals         *int     `json:"decimals,omitempty"`
	WatchDebounce    *string  `json:"watch_debounce,omitempty"` // duration string like "300ms"
}

// Default returns a config with every field unset
func Default() *Config {
	return &Config{}
}

// Load reads a config from a JSON file. The file must have a .json extension
// and be at most 1MB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the set values are usable
func (c *Config) Validate() error {
	if c.CollinearEps != nil && *c.CollinearEps <= 0 {
		return fmt.Errorf("collinear_eps must be positive, got %g", *c.CollinearEps)
	}
	if c.SingularEps != nil && *c.SingularEps <= 0 {
		return fmt.Errorf("singular_eps must be positive, got %g", *c.SingularEps)
	}
	if c.MaxTripletPoints != nil && *c.MaxTripletPoints < 3 {
		return fmt.Errorf("max_triplet_points must be at least 3, got %d", *c.MaxTripletPoints)
	}
	if c.Decimals != nil && (*c.Decimals < 0 || *c.Decimals > 12) {
		return fmt.Errorf("decimals must be between 0 and 12, got %d", *c.Decimals)
	}
	if c.WatchDebounce != nil && *c.WatchDebounce != "" {
		d, err := time.ParseDuration(*c.WatchDebounce)
		if err != nil {
			return fmt.Errorf("invalid watch_debounce '%s': %w", *c.WatchDebounce, err)
		}
		if d < 0 {
			return fmt.Errorf("watch_debounce must be non-negative, got %s", d)
		}
	}
	return nil
}

// GetCollinearEps returns the collinearity threshold or the default
func (c *Config) GetCollinearEps() float64 {
	if c.CollinearEps == nil {
		return geometry.DefaultCollinearEps
	}
	return *c.CollinearEps
}

// GetSingularEps returns the pivot threshold or the default
func (c *Config) GetSingularEps() float64 {
	if c.SingularEps == nil {
		return linalg.DefaultEpsilon
	}
	return *c.SingularEps
}

// GetMaxTripletPoints returns the largest input the O(n³) triplet fit accepts
func (c *Config) GetMaxTripletPoints() int {
	if c.MaxTripletPoints == nil {
		return DefaultMaxTripletPoints
	}
	return *c.MaxTripletPoints
}

// GetDecimals returns the number of output decimals or the default
func (c *Config) GetDecimals() int {
	if c.Decimals == nil {
		return DefaultDecimals
	}
	return *c.Decimals
}

// GetWatchDebounce parses and returns the watch debounce delay
func (c *Config) GetWatchDebounce() time.Duration {
	if c.WatchDebounce == nil || *c.WatchDebounce == "" {
		return DefaultWatchDebounce
	}
	d, err := time.ParseDuration(*c.WatchDebounce)
	if err != nil {
		return DefaultWatchDebounce
	}
	return d
}

// CircleFitter returns a circle fitter using the configured tolerances
func (c *Config) CircleFitter() geometry.CircleFitter {
	return geometry.CircleFitter{
		CollinearEps: c.GetCollinearEps(),
		SingularEps:  c.GetSingularEps(),
	}
}
