package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Apply overlays a YAML document on s. Fields missing from the document keep
// their current value.
func (s *Settings) Apply(data []byte) error {
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return s.Validate()
}

// LoadFile overlays the YAML file at path on the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	s := Current()
	if err := s.Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	Set(s)
	return nil
}
