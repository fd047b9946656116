package loadout

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/heist.space/internal/vault"
)

func writeLoadoutFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loadout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write loadout file: %v", err)
	}
	return path
}

// TestParseConfigFlagOverrides ensures flags populate the config.
func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("loadout", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-file", "defense.yaml"})
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.File != "defense.yaml" {
		t.Fatalf("file = %q, want defense.yaml", cfg.File)
	}
}

// TestRunScoresLoadout ensures the command prints each module and the
// final score with its band.
func TestRunScoresLoadout(t *testing.T) {
	path := writeLoadoutFile(t, `
modules:
  - kind: laser_grid
    difficulty: 0.8
  - kind: guard_dog
    difficulty: 0.5
`)

	var out bytes.Buffer
	if err := Run(context.Background(), Config{File: path}, &out, nil); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Laser Grid") || !strings.Contains(text, "Guard Dog") {
		t.Fatalf("output missing module rows:\n%s", text)
	}
	if !strings.Contains(text, "Security score:") {
		t.Fatalf("output missing score line:\n%s", text)
	}
}

// TestRunRequiresFile ensures a missing path is an error.
func TestRunRequiresFile(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error for missing file path")
	}
}

// TestRunRejectsUnknownKind ensures kind typos surface as errors.
func TestRunRejectsUnknownKind(t *testing.T) {
	path := writeLoadoutFile(t, `
modules:
  - kind: orbital_laser
    difficulty: 0.5
`)

	err := Run(context.Background(), Config{File: path}, nil, nil)
	if !errors.Is(err, vault.ErrUnknownKind) {
		t.Fatalf("Run error = %v, want %v", err, vault.ErrUnknownKind)
	}
}

// TestRunRejectsOversizedLoadout ensures the module cap applies.
func TestRunRejectsOversizedLoadout(t *testing.T) {
	var b strings.Builder
	b.WriteString("modules:\n")
	for _, kind := range vault.Kinds()[:7] {
		b.WriteString("  - kind: " + kind.String() + "\n    difficulty: 0.5\n")
	}
	path := writeLoadoutFile(t, b.String())

	err := Run(context.Background(), Config{File: path}, nil, nil)
	if !errors.Is(err, vault.ErrLoadoutTooLarge) {
		t.Fatalf("Run error = %v, want %v", err, vault.ErrLoadoutTooLarge)
	}
}
