// Package config loads the percolate CLI configuration.
//
// Config file locations (priority order):
//  1. $PERCOLATE_CONFIG
//  2. ./percolate.yaml
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a config path.
const EnvConfigPath = "PERCOLATE_CONFIG"

// DefaultFileName is looked up in the working directory.
const DefaultFileName = "percolate.yaml"

// Source names accepted in Config.Source.
const (
	SourceRandom      = "random"
	SourcePermutation = "permutation"
)

// ErrInvalid indicates a config value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every knob of the percolate command.
type Config struct {
	N       int         `yaml:"n"`
	Trials  int         `yaml:"trials"`
	Workers int         `yaml:"workers"`
	Seed    int64       `yaml:"seed"`
	Source  string      `yaml:"source"`
	Render  bool        `yaml:"render"`
	Trace   TraceConfig `yaml:"trace"`
}

// TraceConfig selects diagnostic sinks. Empty paths disable them.
type TraceConfig struct {
	Text string `yaml:"text"` // plain trace file
	DB   string `yaml:"db"`   // SQLite run log
	Log  bool   `yaml:"log"`  // log every open
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		N:       20,
		Trials:  30,
		Workers: runtime.GOMAXPROCS(0),
		Seed:    1,
		Source:  SourceRandom,
	}
}

// Load finds and loads the config file, or returns defaults if none found.
// The second result is the path that was read ("" for defaults).
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// FindConfigPath returns the first existing config location, or "".
func FindConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}

	return ""
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// applyDefaults fills zero values that have no meaning.
func (c *Config) applyDefaults() {
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Source == "" {
		c.Source = SourceRandom
	}
}

// Validate checks ranges. Grid size and trial count are left to the
// percolation and simulate packages, which report their own errors.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers = %d", ErrInvalid, c.Workers)
	}
	switch c.Source {
	case SourceRandom, SourcePermutation:
	default:
		return fmt.Errorf("%w: source = %q (want %q or %q)", ErrInvalid, c.Source, SourceRandom, SourcePermutation)
	}

	return nil
}
