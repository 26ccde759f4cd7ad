package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete rps configuration.
type Config struct {
	Match *MatchSettings `hcl:"match,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// MatchSettings controls new matches.
type MatchSettings struct {
	Target  int   `hcl:"target,optional"`
	Targets []int `hcl:"targets,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// LogSettings controls the diagnostic log.
type LogSettings struct {
	File  string `hcl:"file,optional"`
	Level string `hcl:"level,optional"`
}

// Defaults.
const (
	DefaultTarget   = 3
	DefaultLogFile  = ""
	DefaultLogLevel = "info"
)

// DefaultTargets is the list of targets offered in the match screen.
var DefaultTargets = []int{1, 3, 5, 7}

var validLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Match: &MatchSettings{
			Target:  DefaultTarget,
			Targets: slices.Clone(DefaultTargets),
		},
		Log: &LogSettings{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}

// Load reads the HCL file at filename. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse config %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode config %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Match == nil {
		c.Match = &MatchSettings{}
	}
	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if len(c.Match.Targets) == 0 {
		c.Match.Targets = slices.Clone(DefaultTargets)
	}
	if c.Match.Target == 0 {
		c.Match.Target = DefaultTarget
		if !slices.Contains(c.Match.Targets, DefaultTarget) {
			c.Match.Target = c.Match.Targets[0]
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate checks the configuration for values the game cannot use.
func (c *Config) Validate() error {
	if c.Match == nil || c.Log == nil {
		return errors.New("incomplete configuration")
	}
	if c.Match.Target <= 0 {
		return fmt.Errorf("match target must be positive, got %d", c.Match.Target)
	}
	if len(c.Match.Targets) == 0 {
		return errors.New("match targets must not be empty")
	}
	for _, t := range c.Match.Targets {
		if t <= 0 {
			return fmt.Errorf("match targets must be positive, got %d", t)
		}
	}
	if !slices.Contains(c.Match.Targets, c.Match.Target) {
		return fmt.Errorf("match target %d is not one of %v", c.Match.Target, c.Match.Targets)
	}
	if !slices.Contains(validLevels, c.Log.Level) {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	return nil
}

// SetTarget overrides the default target, adding it to the offered list
// when missing.
func (c *Config) SetTarget(target int) {
	c.Match.Target = target
	if target > 0 && !slices.Contains(c.Match.Targets, target) {
		c.Match.Targets = append(c.Match.Targets, target)
		slices.Sort(c.Match.Targets)
	}
}

// DefaultPath resolves the configuration file path in priority order:
// 1. RPS_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/rps/config.hcl
// 3. ~/.config/rps/config.hcl
func DefaultPath() (string, error) {
	if p := os.Getenv("RPS_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "rps", "config.hcl"), nil
}
