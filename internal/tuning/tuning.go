// Package tuning exposes every balance knob of the engine as a single
// YAML-loadable document: the module cap, per-kind weight overrides, the
// economy curve, the matchmaking weights, and the per-bias sampling
// ranges. Values absent from a tuning file keep their defaults.
package tuning

import (
	"fmt"
	"time"

	"github.com/louisbranch/heist.space/internal/economy"
	"github.com/louisbranch/heist.space/internal/generator"
	"github.com/louisbranch/heist.space/internal/matchmaking"
	"github.com/louisbranch/heist.space/internal/platform/config"
	"github.com/louisbranch/heist.space/internal/vault"
)

// Tuning is the root tuning document.
type Tuning struct {
	MaxModules   int     `yaml:"max_modules"`
	ScoreCeiling float64 `yaml:"score_ceiling"`

	// ModuleWeights overrides catalog weights by kind slug.
	ModuleWeights map[string]float64 `yaml:"module_weights"`

	Economy     EconomyTuning     `yaml:"economy"`
	Matchmaking MatchmakingTuning `yaml:"matchmaking"`
	Generator   GeneratorTuning   `yaml:"generator"`
}

// EconomyTuning mirrors economy.Params.
type EconomyTuning struct {
	MinFeeRate       float64 `yaml:"min_fee_rate"`
	MaxFeeRate       float64 `yaml:"max_fee_rate"`
	RatingScale      float64 `yaml:"rating_scale"`
	ProbabilityFloor float64 `yaml:"probability_floor"`
}

// WeightsTuning mirrors matchmaking.Weights.
type WeightsTuning struct {
	Value     float64 `yaml:"value"`
	Ease      float64 `yaml:"ease"`
	Freshness float64 `yaml:"freshness"`
	Fairness  float64 `yaml:"fairness"`
	Variety   float64 `yaml:"variety"`
}

// MatchmakingTuning mirrors matchmaking.Params. FreshnessWindow is a
// duration string such as "45m" or "2h".
type MatchmakingTuning struct {
	Weights         WeightsTuning `yaml:"weights"`
	ValueScale      int64         `yaml:"value_scale"`
	FreshnessWindow string        `yaml:"freshness_window"`
	FreshBonus      float64       `yaml:"fresh_bonus"`
	StaleBonus      float64       `yaml:"stale_bonus"`
	FairnessBand    float64       `yaml:"fairness_band"`
	FairBonus       float64       `yaml:"fair_bonus"`
	UnfairBonus     float64       `yaml:"unfair_bonus"`
}

// RangeTuning is an inclusive numeric range.
type RangeTuning struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// BalanceRangeTuning is an inclusive credit range.
type BalanceRangeTuning struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// ProfileTuning holds one bias profile's sampling ranges.
type ProfileTuning struct {
	Strength RangeTuning        `yaml:"strength"`
	Balance  BalanceRangeTuning `yaml:"balance"`
}

// GeneratorTuning mirrors generator.Config.
type GeneratorTuning struct {
	Easy             ProfileTuning `yaml:"easy"`
	Mixed            ProfileTuning `yaml:"mixed"`
	Hard             ProfileTuning `yaml:"hard"`
	DifficultyJitter float64       `yaml:"difficulty_jitter"`
	PreferredKinds   []string      `yaml:"preferred_kinds"`
}

// Default returns a tuning document populated from the package defaults.
func Default() Tuning {
	rules := vault.DefaultRules()
	eco := economy.DefaultParams()
	mm := matchmaking.DefaultParams()
	gen := generator.DefaultConfig()

	return Tuning{
		MaxModules:   rules.MaxModules,
		ScoreCeiling: rules.ScoreCeiling,
		Economy: EconomyTuning{
			MinFeeRate:       eco.MinFeeRate,
			MaxFeeRate:       eco.MaxFeeRate,
			RatingScale:      eco.RatingScale,
			ProbabilityFloor: eco.ProbabilityFloor,
		},
		Matchmaking: MatchmakingTuning{
			Weights: WeightsTuning{
				Value:     mm.Weights.Value,
				Ease:      mm.Weights.Ease,
				Freshness: mm.Weights.Freshness,
				Fairness:  mm.Weights.Fairness,
				Variety:   mm.Weights.Variety,
			},
			ValueScale:      mm.ValueScale,
			FreshnessWindow: mm.FreshnessWindow.String(),
			FreshBonus:      mm.FreshBonus,
			StaleBonus:      mm.StaleBonus,
			FairnessBand:    mm.FairnessBand,
			FairBonus:       mm.FairBonus,
			UnfairBonus:     mm.UnfairBonus,
		},
		Generator: GeneratorTuning{
			Easy:             profileTuning(gen.Easy),
			Mixed:            profileTuning(gen.Mixed),
			Hard:             profileTuning(gen.Hard),
			DifficultyJitter: gen.DifficultyJitter,
		},
	}
}

func biasProfile(p ProfileTuning) generator.BiasProfile {
	return generator.BiasProfile{
		Strength: generator.StrengthRange{Min: p.Strength.Min, Max: p.Strength.Max},
		Balance:  generator.BalanceRange{Min: p.Balance.Min, Max: p.Balance.Max},
	}
}

func profileTuning(profile generator.BiasProfile) ProfileTuning {
	return ProfileTuning{
		Strength: RangeTuning{Min: profile.Strength.Min, Max: profile.Strength.Max},
		Balance:  BalanceRangeTuning{Min: profile.Balance.Min, Max: profile.Balance.Max},
	}
}

// Load reads a tuning file over the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Tuning, error) {
	t := Default()
	if err := config.LoadYAML(path, &t); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Settings is the tuning document resolved into the engine's parameter
// types.
type Settings struct {
	Rules       vault.Rules
	Economy     economy.Params
	Matchmaking matchmaking.Params
	Generator   generator.Config
}

// Build resolves the document into validated engine settings.
func (t Tuning) Build() (Settings, error) {
	catalog := vault.DefaultCatalog()
	for slug, weight := range t.ModuleWeights {
		kind, err := vault.ParseModuleKind(slug)
		if err != nil {
			return Settings{}, err
		}
		info := catalog[kind]
		info.Weight = weight
		catalog[kind] = info
	}

	rules := vault.Rules{
		MaxModules:   t.MaxModules,
		ScoreCeiling: t.ScoreCeiling,
		Catalog:      catalog,
	}

	eco := economy.Params{
		MinFeeRate:       t.Economy.MinFeeRate,
		MaxFeeRate:       t.Economy.MaxFeeRate,
		ScoreCeiling:     t.ScoreCeiling,
		RatingScale:      t.Economy.RatingScale,
		ProbabilityFloor: t.Economy.ProbabilityFloor,
	}

	window, err := time.ParseDuration(t.Matchmaking.FreshnessWindow)
	if err != nil {
		return Settings{}, fmt.Errorf("parse freshness window: %w", err)
	}
	mm := matchmaking.Params{
		Weights: matchmaking.Weights{
			Value:     t.Matchmaking.Weights.Value,
			Ease:      t.Matchmaking.Weights.Ease,
			Freshness: t.Matchmaking.Weights.Freshness,
			Fairness:  t.Matchmaking.Weights.Fairness,
			Variety:   t.Matchmaking.Weights.Variety,
		},
		ValueScale:      t.Matchmaking.ValueScale,
		FreshnessWindow: window,
		FreshBonus:      t.Matchmaking.FreshBonus,
		StaleBonus:      t.Matchmaking.StaleBonus,
		FairnessBand:    t.Matchmaking.FairnessBand,
		FairBonus:       t.Matchmaking.FairBonus,
		UnfairBonus:     t.Matchmaking.UnfairBonus,
		Economy:         eco,
	}

	preferred := make([]vault.ModuleKind, 0, len(t.Generator.PreferredKinds))
	for _, slug := range t.Generator.PreferredKinds {
		kind, err := vault.ParseModuleKind(slug)
		if err != nil {
			return Settings{}, err
		}
		preferred = append(preferred, kind)
	}
	gen := generator.Config{
		Rules:            rules,
		Economy:          eco,
		Easy:             biasProfile(t.Generator.Easy),
		Mixed:            biasProfile(t.Generator.Mixed),
		Hard:             biasProfile(t.Generator.Hard),
		DifficultyJitter: t.Generator.DifficultyJitter,
		PreferredKinds:   preferred,
	}

	settings := Settings{Rules: rules, Economy: eco, Matchmaking: mm, Generator: gen}
	if err := rules.Validate(); err != nil {
		return Settings{}, err
	}
	if err := eco.Validate(); err != nil {
		return Settings{}, err
	}
	if err := mm.Validate(); err != nil {
		return Settings{}, err
	}
	if err := gen.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
