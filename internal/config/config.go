// Package config provides configuration for narmi-chess.
package config

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	chesserrors "github.com/lgbarn/narmi-chess-go/internal/errors"
	"github.com/lgbarn/narmi-chess-go/internal/rules"
)

// RelativePath is the location of the config file below the XDG config dirs.
var RelativePath = filepath.Join("narmi-chess", "config.yaml")

// Config holds all program configuration.
type Config struct {
	Verbosity  int      `yaml:"verbosity"`  // 0=info, 1=debug, 2=trace
	JSON       bool     `yaml:"json"`       // Render results as JSON
	Workers    int      `yaml:"workers"`    // Goroutines used by batch commands
	Rules      []string `yaml:"rules"`      // Rule pipeline by name (empty = default)
	Progress   bool     `yaml:"progress"`   // Show a spinner during batch checks
	CPUProfile string   `yaml:"cpuprofile"` // Directory for CPU profiles ("" = off)

	// Output streams
	Output io.Writer `yaml:"-"`
	Log    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers: runtime.NumCPU(),
		Output:  os.Stdout,
		Log:     os.Stderr,
	}
}

// Load reads the YAML file at path over the default values.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, chesserrors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, chesserrors.Wrapf(chesserrors.ErrInvalidConfig, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, chesserrors.Wrap(err, path)
	}
	return cfg, nil
}

// Discover searches the XDG config directories for the config file.
// It returns the defaults and an empty path when no file exists.
func Discover() (*Config, string, error) {
	path, err := xdg.SearchConfigFile(RelativePath)
	if err != nil {
		return NewConfig(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return chesserrors.Wrapf(chesserrors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Verbosity < 0 {
		return chesserrors.Wrapf(chesserrors.ErrInvalidConfig, "verbosity must not be negative, got %d", c.Verbosity)
	}
	if _, err := rules.FromNames(c.Rules); err != nil {
		return chesserrors.Wrapf(chesserrors.ErrInvalidConfig, "%v", err)
	}
	return nil
}

// Pipeline builds the rule pipeline named by the configuration.
func (c *Config) Pipeline() (*rules.Pipeline, error) {
	return rules.FromNames(c.Rules)
}
