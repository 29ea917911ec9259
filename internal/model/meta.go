package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Meta holds the three declared, order-significant universes InputData
// needs besides its catalogues: the classes (as opposed to teacher personal
// calendars), the days, and the times, plus the playtime label override.
// Unlike the four catalogues, these are plain ordered lists, not keyed
// tables, so they are read directly off one small YAML manifest rather than
// through the catalog.Load boundary.
type Meta struct {
	Classes      []Calendar `yaml:"classes"`
	Days         []Day      `yaml:"days"`
	Times        []Time     `yaml:"times"`
	PlaytimeName string     `yaml:"playtime_name"`
}

// LoadMeta reads the manifest at path (conventionally "meta.yaml" inside
// the catalogue directory).
func LoadMeta(path string) (Meta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Meta{}, fmt.Errorf("model: read meta %s: %w", path, err)
	}
	var m Meta
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Meta{}, fmt.Errorf("model: parse meta %s: %w", path, err)
	}
	if m.PlaytimeName == "" {
		m.PlaytimeName = DefaultPlaytimeName
	}
	return m, nil
}
