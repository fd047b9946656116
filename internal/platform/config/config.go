// Package config provides the shared configuration plumbing: environment
// variable parsing, YAML file loading, and a consistent fatal-exit path
// for CLI entry points.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadYAML decodes a YAML file into target. Unknown fields are rejected so
// typos in tuning files surface immediately instead of silently falling
// back to defaults.
func LoadYAML(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		// An empty file has no overrides; the target keeps its values.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
