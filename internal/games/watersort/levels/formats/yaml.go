// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Vials    []string          `yaml:"vials"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Vials    []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("level has no id")
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Vials:    yl.Vials,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level in the same layout ParseYAML reads.
func MarshalYAML(l Level) ([]byte, error) {
	return yaml.Marshal(YAMLLevel(l))
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
