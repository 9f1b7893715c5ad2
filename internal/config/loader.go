// Package config loads and validates the landing content configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	streamerrors "github.com/Boskolife/pincoin/pkg/errors"
)

// ParseConfig reads, decodes and validates a landing configuration file.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, streamerrors.NewParseError(path, 0, err)
	}

	cfg, err := ParseBytes(data)
	if err != nil {
		var parseErr *streamerrors.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}

	return cfg, nil
}

// ParseBytes decodes and validates raw YAML configuration content.
func ParseBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, streamerrors.NewParseError("", yamlErrorLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// yamlErrorLine extracts a line number from yaml.v3's typed errors when one
// is available.
func yamlErrorLine(err error) int {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		var line int
		if _, scanErr := fmt.Sscanf(typeErr.Errors[0], "line %d:", &line); scanErr == nil {
			return line
		}
	}
	return 0
}
