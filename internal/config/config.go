// Package config handles loading and saving termcv settings: the CV
// source, the selected palette, and the last focused panel.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"termcv/internal/logger"
)

const configFileName = "config.yaml"

// Config is the root configuration structure persisted between
// sessions.
type Config struct {
	CV        string        `yaml:"cv,omitempty"`        // file path or http(s) URL
	Theme     string        `yaml:"theme,omitempty"`     // palette name
	HomePanel string        `yaml:"homePanel,omitempty"` // default fragment target
	LastPanel string        `yaml:"lastPanel,omitempty"` // last focused panel (replace semantics)
	Logging   logger.Config `yaml:"logging,omitempty"`
}

// DefaultDir returns the per-user config directory (~/.termcv).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, ".termcv"), nil
}

// Load reads the config file under dir. A missing file yields the
// zero config without error; the caller applies defaults.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("config: read: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	return &cfg, nil
}

// Save writes the config file under dir, creating the directory as
// needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), data, 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}

// FragmentStore persists the last focused panel id with replace
// semantics: the stored value is overwritten in place, never appended,
// so no focus history accumulates. It implements focus.Location.
type FragmentStore struct {
	dir string
	cfg *Config
}

// NewFragmentStore binds a store to the loaded config and its
// directory.
func NewFragmentStore(dir string, cfg *Config) *FragmentStore {
	return &FragmentStore{dir: dir, cfg: cfg}
}

// Replace records id as the current fragment and saves the config.
func (f *FragmentStore) Replace(id string) error {
	f.cfg.LastPanel = id
	return Save(f.dir, f.cfg)
}

// Current returns the stored fragment, empty when none was recorded.
func (f *FragmentStore) Current() string {
	return f.cfg.LastPanel
}
