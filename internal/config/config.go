// YAML config loader with CUE validation integration
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats understood by the renderer.
const (
	FormatPlain = "plain"
	FormatGrid  = "grid"
	FormatJSON  = "json"
)

const (
	DefaultTrackerURL  = "http://127.0.0.1:8888"
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 1
	MaxConcurrency     = 64

	// TrackerURLEnv overrides the configured tracker URL.
	TrackerURLEnv = "HERON_TRACKER_URL"
)

// Config holds the explorer's settings.
type Config struct {
	TrackerURL   string        `yaml:"tracker_url"`
	Timeout      time.Duration `yaml:"timeout"`
	Concurrency  int           `yaml:"concurrency"`
	Format       string        `yaml:"format"`
	MaxCellWidth int           `yaml:"max_cell_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TrackerURL:  DefaultTrackerURL,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		Format:      FormatPlain,
	}
}

// DefaultPath returns heron-explorer/config.yaml under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "heron-explorer", "config.yaml")
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !required:
		case err != nil:
			return nil, fmt.Errorf("cannot read config: %w", err)
		default:
			if err := Validate(data); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("cannot unmarshal YAML config: %w", err)
			}
		}
	}
	if env := os.Getenv(TrackerURLEnv); env != "" {
		cfg.TrackerURL = env
	}
	return cfg, nil
}
