package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-img2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// fileConfig mirrors the YAML config file. Zero values mean "not set";
// explicit command-line flags override file values.
type fileConfig struct {
	DPI       *float64 `yaml:"dpi"`
	Margin    *float64 `yaml:"margin"`
	Title     string   `yaml:"title"`
	Page      string   `yaml:"page"`
	OutputDir string   `yaml:"outputDir"`
	Verify    bool     `yaml:"verify"`
	Workers   int      `yaml:"workers"`
}

// loadConfig reads and strictly parses a YAML config file. Unknown keys
// are errors, so typos do not silently fall back to defaults.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}
