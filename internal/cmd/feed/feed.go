// Package feed implements the opponent-feed CLI: it generates a batch of
// opponent vaults for an attacker rating and prints them in ranked order.
package feed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"text/tabwriter"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/louisbranch/heist.space/internal/generator"
	"github.com/louisbranch/heist.space/internal/random"
	"github.com/louisbranch/heist.space/internal/tuning"
	"github.com/louisbranch/heist.space/internal/vault"
)

// Config holds feed command configuration.
type Config struct {
	Tuning  string  `env:"HEIST_SPACE_TUNING_FILE"`
	Seed    int64   `env:"HEIST_SPACE_FEED_SEED"`
	Count   int     `env:"HEIST_SPACE_FEED_COUNT"   envDefault:"10"`
	Rating  float64 `env:"HEIST_SPACE_FEED_RATING"  envDefault:"50"`
	Bias    string  `env:"HEIST_SPACE_FEED_BIAS"    envDefault:"mixed"`
	Verbose bool    `env:"HEIST_SPACE_FEED_VERBOSE"`
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Tuning, "tuning", cfg.Tuning, "path to tuning yaml file")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generator seed (0 picks one)")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of vaults to generate")
	fs.Float64Var(&cfg.Rating, "rating", cfg.Rating, "attacker skill rating")
	fs.StringVar(&cfg.Bias, "bias", cfg.Bias, "difficulty bias (easy, mixed, hard)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the feed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

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

	bias, err := generator.ParseBias(cfg.Bias)
	if err != nil {
		return err
	}

	rng, seed := random.NewRNG(cfg.Seed)
	if cfg.Verbose {
		logger.Printf("using seed %d", seed)
	}

	gen, err := generator.New(settings.Generator, rng)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	batch, err := gen.GenerateFeed(cfg.Rating, cfg.Count, bias)
	if err != nil {
		return err
	}

	attacker := vault.AttackerContext{Rating: cfg.Rating}
	now := time.Now()
	ranked, err := settings.Matchmaking.Rank(batch, attacker, now)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tBAND\tBALANCE\tFEE\tLOOT\tCHANCE\tTAS")
	for i, v := range ranked {
		tas, err := settings.Matchmaking.Attractiveness(v, attacker, now)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d-%d\t%s\t%.3f\n",
			i+1, v.Name, v.Band, v.Balance, v.AttackFee,
			v.Loot.Min, v.Loot.Max, v.SuccessChance, tas)
	}
	return w.Flush()
}
