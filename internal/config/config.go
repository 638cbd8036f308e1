package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zuri-tickets/chiphash/pkg/chiphash"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type CollectionConfig struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type ProjectConfig struct {
	Format      string           `yaml:"format,omitempty"`
	Collection  CollectionConfig `yaml:"collection,omitempty"`
	OutputDir   string           `yaml:"output_dir,omitempty"`
	Materialize string           `yaml:"materialize,omitempty"`
	ScratchDir  string           `yaml:"scratch_dir,omitempty"`
}

const ConfigFileName = "chiphash.yaml"

// Load reads chiphash.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file at an explicit path. Unknown keys are rejected
// so that a typo does not silently fall back to a default.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid %s: %w: %w", configPath, chiphash.ErrInvalidConfig, err)
	}
	if _, err := chiphash.ParseMaterializeMode(cfg.Materialize); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", configPath, err)
	}
	return &cfg, nil
}

// Apply overlays the non-empty values of the file onto a HashConfig.
func (c *ProjectConfig) Apply(hc *chiphash.HashConfig) {
	if c == nil {
		return
	}
	if c.Format != "" {
		hc.Format = c.Format
	}
	if c.Collection.Name != "" {
		hc.Collection.Name = c.Collection.Name
	}
	if c.Collection.Description != "" {
		hc.Collection.Description = c.Collection.Description
	}
	if c.Materialize != "" {
		hc.Materialize = chiphash.MaterializeMode(c.Materialize)
	}
	if c.ScratchDir != "" {
		hc.ScratchDir = c.ScratchDir
	}
}

// Save writes cfg as chiphash.yaml into dir.
func Save(dir string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0644)
}
