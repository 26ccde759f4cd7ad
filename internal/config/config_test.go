package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTarget, cfg.Match.Target)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
match {
  target  = 5
  targets = [3, 5, 10]
  seed    = 42
}
log {
  file  = "/tmp/rps.log"
  level = "debug"
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 5, cfg.Match.Target)
	assert.Equal(t, []int{3, 5, 10}, cfg.Match.Targets)
	assert.Equal(t, int64(42), cfg.Match.Seed)
	assert.Equal(t, "/tmp/rps.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PartialFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
match {
  targets = [2, 4]
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 2, cfg.Match.Target, "falls back to first offered target")
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_SyntaxError(t *testing.T) {
	path := writeConfig(t, `match {`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownAttribute(t *testing.T) {
	path := writeConfig(t, `
match {
  rounds = 3
}
`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero target", func(c *Config) { c.Match.Target = 0 }},
		{"target not offered", func(c *Config) { c.Match.Target = 4 }},
		{"empty targets", func(c *Config) { c.Match.Targets = nil }},
		{"negative offered target", func(c *Config) { c.Match.Targets = []int{-1, 3} }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSetTarget_AddsToOfferedList(t *testing.T) {
	cfg := Default()
	cfg.SetTarget(4)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1, 3, 4, 5, 7}, cfg.Match.Targets)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("RPS_CONFIG", "/etc/rps.hcl")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/etc/rps.hcl", p)

	t.Setenv("RPS_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "rps", "config.hcl"), p)
}
