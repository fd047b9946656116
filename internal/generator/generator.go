package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/louisbranch/heist.space/internal/economy"
	"github.com/louisbranch/heist.space/internal/id"
	"github.com/louisbranch/heist.space/internal/vault"
)

// ErrUnknownBias indicates a difficulty bias outside the known set.
var ErrUnknownBias = errors.New("unknown difficulty bias")

// ErrInvalidCount indicates a negative feed size.
var ErrInvalidCount = errors.New("feed count must be non-negative")

// ErrNegativeRating indicates an attacker rating below zero.
var ErrNegativeRating = errors.New("attacker rating must be non-negative")

// ErrInvalidConfig indicates unusable generator configuration.
var ErrInvalidConfig = errors.New("generator config is invalid")

// ErrMissingRNG indicates a generator constructed without a random source.
var ErrMissingRNG = errors.New("generator requires a random source")

// Bias selects the difficulty profile a generated vault is drawn from.
type Bias int

const (
	BiasUnspecified Bias = iota
	BiasEasy
	BiasMixed
	BiasHard
)

func (b Bias) String() string {
	switch b {
	case BiasEasy:
		return "easy"
	case BiasMixed:
		return "mixed"
	case BiasHard:
		return "hard"
	default:
		return "unspecified"
	}
}

// ParseBias resolves a bias name.
func ParseBias(name string) (Bias, error) {
	switch name {
	case "easy":
		return BiasEasy, nil
	case "mixed":
		return BiasMixed, nil
	case "hard":
		return BiasHard, nil
	default:
		return BiasUnspecified, fmt.Errorf("%w: %q", ErrUnknownBias, name)
	}
}

// StrengthRange bounds the target security score a profile draws from.
type StrengthRange struct {
	Min float64
	Max float64
}

// BalanceRange bounds the vault balance a profile draws from.
type BalanceRange struct {
	Min int64
	Max int64
}

// BiasProfile holds the sampling ranges for one difficulty bias.
type BiasProfile struct {
	Strength StrengthRange
	Balance  BalanceRange
}

// Config holds the generator tuning.
type Config struct {
	Rules   vault.Rules
	Economy economy.Params

	Easy  BiasProfile
	Mixed BiasProfile
	Hard  BiasProfile

	// DifficultyJitter is the maximum absolute noise added to each
	// module's difficulty around the loadout target.
	DifficultyJitter float64

	// PreferredKinds restricts module selection to a subset of the
	// catalog. Empty means the whole catalog is eligible.
	PreferredKinds []vault.ModuleKind
}

// DefaultConfig returns the stock generator tuning.
func DefaultConfig() Config {
	return Config{
		Rules:   vault.DefaultRules(),
		Economy: economy.DefaultParams(),
		Easy: BiasProfile{
			Strength: StrengthRange{Min: 10, Max: 40},
			Balance:  BalanceRange{Min: 500, Max: 3_000},
		},
		Mixed: BiasProfile{
			Strength: StrengthRange{Min: 10, Max: 90},
			Balance:  BalanceRange{Min: 500, Max: 9_000},
		},
		Hard: BiasProfile{
			Strength: StrengthRange{Min: 55, Max: 90},
			Balance:  BalanceRange{Min: 3_000, Max: 15_000},
		},
		DifficultyJitter: 0.15,
	}
}

// Validate checks the configuration is usable.
func (c Config) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Economy.Validate(); err != nil {
		return err
	}
	for _, profile := range []BiasProfile{c.Easy, c.Mixed, c.Hard} {
		if profile.Strength.Min < 0 || profile.Strength.Max < profile.Strength.Min {
			return fmt.Errorf("%w: strength range", ErrInvalidConfig)
		}
		if profile.Balance.Min < 0 || profile.Balance.Max < profile.Balance.Min {
			return fmt.Errorf("%w: balance range", ErrInvalidConfig)
		}
	}
	if c.DifficultyJitter < 0 || c.DifficultyJitter > 1 {
		return fmt.Errorf("%w: difficulty jitter", ErrInvalidConfig)
	}
	seen := make(map[vault.ModuleKind]bool, len(c.PreferredKinds))
	for _, kind := range c.PreferredKinds {
		if _, err := c.Rules.Catalog.Info(kind); err != nil {
			return err
		}
		if seen[kind] {
			return fmt.Errorf("%w: duplicate preferred kind %s", ErrInvalidConfig, kind)
		}
		seen[kind] = true
	}
	return nil
}

func (c Config) profileFor(bias Bias) (BiasProfile, error) {
	switch bias {
	case BiasEasy:
		return c.Easy, nil
	case BiasMixed:
		return c.Mixed, nil
	case BiasHard:
		return c.Hard, nil
	default:
		return BiasProfile{}, fmt.Errorf("%w: %d", ErrUnknownBias, bias)
	}
}

// Generator procedurally builds opponent vaults. It holds no state beyond
// its configuration and the injected random source, so every generated
// vault depends only on the config, the arguments, and the draws taken
// from that source.
type Generator struct {
	config Config
	rng    *rand.Rand
}

// New creates a Generator with the given configuration and random source.
func New(cfg Config, rng *rand.Rand) (*Generator, error) {
	if rng == nil {
		return nil, ErrMissingRNG
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{config: cfg, rng: rng}, nil
}

// Generate builds one internally consistent opponent vault: balance and
// target strength sampled from the bias profile, a loadout of distinct
// module kinds with difficulties jittered around the target, and every
// derived economy field computed from the final score and balance.
func (g *Generator) Generate(rating float64, bias Bias) (vault.OpponentVault, error) {
	if rating < 0 {
		return vault.OpponentVault{}, ErrNegativeRating
	}
	profile, err := g.config.profileFor(bias)
	if err != nil {
		return vault.OpponentVault{}, err
	}

	balance := sampleBalance(g.rng, profile.Balance)
	target := sampleStrength(g.rng, profile.Strength)

	loadout, err := g.buildLoadout(target)
	if err != nil {
		return vault.OpponentVault{}, err
	}

	fee, err := g.config.Economy.AttackFee(balance, loadout.EffectiveScore)
	if err != nil {
		return vault.OpponentVault{}, err
	}
	probability, err := g.config.Economy.SuccessProbability(rating, loadout.EffectiveScore)
	if err != nil {
		return vault.OpponentVault{}, err
	}
	band, err := economy.Band(loadout.EffectiveScore)
	if err != nil {
		return vault.OpponentVault{}, err
	}
	loot, err := economy.LootBounds(balance)
	if err != nil {
		return vault.OpponentVault{}, err
	}

	vaultID, err := id.NewFromReader(g.rng)
	if err != nil {
		return vault.OpponentVault{}, fmt.Errorf("vault id: %w", err)
	}

	return vault.OpponentVault{
		ID:            vaultID,
		Name:          vaultName(g.rng),
		Balance:       balance,
		SecurityScore: loadout.EffectiveScore,
		Loadout:       loadout,
		Band:          band,
		Loot:          loot,
		AttackFee:     fee,
		SuccessChance: economy.ChanceLabelFor(probability),
	}, nil
}

// GenerateFeed builds count independent vaults. A zero count returns an
// empty feed.
func (g *Generator) GenerateFeed(rating float64, count int, bias Bias) ([]vault.OpponentVault, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	feed := make([]vault.OpponentVault, 0, count)
	for i := 0; i < count; i++ {
		v, err := g.Generate(rating, bias)
		if err != nil {
			return nil, err
		}
		feed = append(feed, v)
	}
	return feed, nil
}

// buildLoadout selects distinct module kinds and spreads the target score
// across them. The base difficulty is scaled by the selected kinds' total
// weight so the loadout's score lands near the target before jitter.
func (g *Generator) buildLoadout(target float64) (vault.Loadout, error) {
	pool := g.eligibleKinds()
	count := g.config.Rules.MaxModules
	if len(pool) < count {
		// Degenerate catalog: use every kind we have rather than fail.
		count = len(pool)
	}

	g.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	chosen := pool[:count]

	totalWeight := 0.0
	for _, kind := range chosen {
		info, err := g.config.Rules.Catalog.Info(kind)
		if err != nil {
			return vault.Loadout{}, err
		}
		totalWeight += info.Weight
	}

	rules := g.config.Rules
	base := target / rules.ScoreCeiling
	if totalWeight > 0 {
		base *= float64(rules.MaxModules) * rules.Catalog.MaxWeight() / totalWeight
	}

	modules := make([]vault.ChallengeModule, 0, count)
	for _, kind := range chosen {
		difficulty := clamp01(base + (g.rng.Float64()*2-1)*g.config.DifficultyJitter)
		moduleID, err := id.NewFromReader(g.rng)
		if err != nil {
			return vault.Loadout{}, fmt.Errorf("module id: %w", err)
		}
		module, err := rules.NewModule(moduleID, kind, difficulty)
		if err != nil {
			return vault.Loadout{}, err
		}
		modules = append(modules, module)
	}

	return rules.NewLoadout(modules)
}

// eligibleKinds returns the selection pool in deterministic order.
func (g *Generator) eligibleKinds() []vault.ModuleKind {
	if len(g.config.PreferredKinds) > 0 {
		return append([]vault.ModuleKind{}, g.config.PreferredKinds...)
	}
	pool := make([]vault.ModuleKind, 0, len(g.config.Rules.Catalog))
	for _, kind := range vault.Kinds() {
		if _, ok := g.config.Rules.Catalog[kind]; ok {
			pool = append(pool, kind)
		}
	}
	return pool
}

func sampleBalance(rng *rand.Rand, bounds BalanceRange) int64 {
	if bounds.Max == bounds.Min {
		return bounds.Min
	}
	return bounds.Min + rng.Int63n(bounds.Max-bounds.Min+1)
}

func sampleStrength(rng *rand.Rand, bounds StrengthRange) float64 {
	return bounds.Min + rng.Float64()*(bounds.Max-bounds.Min)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
