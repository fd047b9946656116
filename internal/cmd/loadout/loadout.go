// Package loadout implements the loadout-scoring CLI: it reads a loadout
// description from a YAML file and prints the security score and band a
// defense editor would show.
package loadout

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/caarlos0/env/v11"
	"github.com/louisbranch/heist.space/internal/economy"
	"github.com/louisbranch/heist.space/internal/id"
	"github.com/louisbranch/heist.space/internal/platform/config"
	"github.com/louisbranch/heist.space/internal/tuning"
	"github.com/louisbranch/heist.space/internal/vault"
)

// Config holds loadout command configuration.
type Config struct {
	File   string `env:"HEIST_SPACE_LOADOUT_FILE"`
	Tuning string `env:"HEIST_SPACE_TUNING_FILE"`
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.File, "file", cfg.File, "path to loadout yaml file")
	fs.StringVar(&cfg.Tuning, "tuning", cfg.Tuning, "path to tuning yaml file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadoutFile is the on-disk loadout description.
type loadoutFile struct {
	Modules []moduleEntry `yaml:"modules"`
}

type moduleEntry struct {
	Kind       string  `yaml:"kind"`
	Difficulty float64 `yaml:"difficulty"`
}

// Run executes the loadout command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if cfg.File == "" {
		return errors.New("loadout file path is required")
	}

	doc := tuning.Default()
	if cfg.Tuning != "" {
		loaded, err := tuning.Load(cfg.Tuning)
		if err != nil {
			return err
		}
		doc = loaded
	}
	settings, err := doc.Build()
	if err != nil {
		return err
	}

	var file loadoutFile
	if err := config.LoadYAML(cfg.File, &file); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	modules := make([]vault.ChallengeModule, 0, len(file.Modules))
	for _, entry := range file.Modules {
		kind, err := vault.ParseModuleKind(entry.Kind)
		if err != nil {
			return err
		}
		moduleID, err := id.New()
		if err != nil {
			return err
		}
		module, err := settings.Rules.NewModule(moduleID, kind, entry.Difficulty)
		if err != nil {
			return err
		}
		modules = append(modules, module)
	}

	loadout, err := settings.Rules.NewLoadout(modules)
	if err != nil {
		return err
	}
	band, err := economy.Band(loadout.EffectiveScore)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODULE\tKIND\tDIFFICULTY\tWEIGHT")
	for _, module := range loadout.Modules {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\n", module.Name, module.Kind, module.Difficulty, module.Weight)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSecurity score: %.1f (%s)\n", loadout.EffectiveScore, band)
	return nil
}
