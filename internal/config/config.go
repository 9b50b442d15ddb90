// Package config loads YAML generation presets for the CLI. A preset holds
// the same knobs the flags expose; flags win when both are set.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a saved set of generation parameters.
type Preset struct {
	Center      string `yaml:"center"`       // archetype name or "random"
	Ring        string `yaml:"ring"`         // all | standard | expanded
	Supply      string `yaml:"supply"`       // none | random | distributed | spaced
	SupplyCount int    `yaml:"supply_count"` // ignored for none/distributed
	Seed        int64  `yaml:"seed"`         // 0 = time-derived
	Output      string `yaml:"output"`       // plot path; empty = default
	Colors      bool   `yaml:"colors"`
	ShowIDs     bool   `yaml:"show_ids"`
}

// Default returns the preset matching the CLI flag defaults.
func Default() Preset {
	return Preset{
		Center:      "random",
		Ring:        "all",
		Supply:      "none",
		SupplyCount: 7,
	}
}

// Load reads a preset file. Unknown keys are rejected so typos surface
// instead of silently falling back to defaults.
func Load(path string) (Preset, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read preset: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return p, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}
