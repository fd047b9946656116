package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"HEIST_SPACE_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("HEIST_SPACE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

type yamlTestConfig struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestLoadYAMLDecodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("name: feed\ncount: 7\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var cfg yamlTestConfig
	if err := LoadYAML(path, &cfg); err != nil {
		t.Fatalf("LoadYAML returned error: %v", err)
	}
	if cfg.Name != "feed" || cfg.Count != 7 {
		t.Fatalf("decoded config = %+v, want {feed 7}", cfg)
	}
}

func TestLoadYAMLRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("nam: feed\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var cfg yamlTestConfig
	if err := LoadYAML(path, &cfg); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadYAMLEmptyFileKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg := yamlTestConfig{Name: "feed", Count: 7}
	if err := LoadYAML(path, &cfg); err != nil {
		t.Fatalf("LoadYAML returned error: %v", err)
	}
	if cfg.Name != "feed" || cfg.Count != 7 {
		t.Fatalf("config after empty file = %+v, want {feed 7}", cfg)
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	var cfg yamlTestConfig
	err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "open config file:") {
		t.Fatalf("expected open config file prefix, got %v", err)
	}
}
