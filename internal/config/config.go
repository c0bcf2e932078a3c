// Package config loads tool-level settings for merge sessions.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// MergeConfig holds settings loaded from gitmerge.yml.
type MergeConfig struct {
	// KeepWorldTransform preserves world transforms when the engine
	// reattaches materialized copies. Defaults to true.
	KeepWorldTransform *bool `yaml:"keepWorldTransform,omitempty"`

	// IndexPairing pairs component lists positionally instead of by
	// component type, for engines without stable component typing.
	IndexPairing bool `yaml:"indexPairing,omitempty"`

	// Verbose enables debug-level session logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// Load attempts to read gitmerge.yml or gitmerge.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*MergeConfig, error) {
	for _, name := range []string{"gitmerge.yml", "gitmerge.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg MergeConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &MergeConfig{}, nil
}

// KeepWorld resolves the KeepWorldTransform setting with its default.
func (c *MergeConfig) KeepWorld() bool {
	if c.KeepWorldTransform == nil {
		return true
	}
	return *c.KeepWorldTransform
}
