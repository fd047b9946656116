package matchmaking

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/louisbranch/heist.space/internal/economy"
	"github.com/louisbranch/heist.space/internal/vault"
)

// ErrInvalidWeights indicates a weight set with negative entries or no
// positive entry.
var ErrInvalidWeights = errors.New("weights must be non-negative with a positive sum")

// ErrInvalidParams indicates unusable matchmaking parameters.
var ErrInvalidParams = errors.New("matchmaking params are invalid")

// Weights defines the relative importance of each attractiveness signal.
type Weights struct {
	Value     float64
	Ease      float64
	Freshness float64
	Fairness  float64
	Variety   float64
}

// DefaultWeights returns the stock weight distribution.
func DefaultWeights() Weights {
	return Weights{
		Value:     0.30,
		Ease:      0.30,
		Freshness: 0.15,
		Fairness:  0.15,
		Variety:   0.10,
	}
}

// Validate checks that no weight is negative and at least one is positive.
func (w Weights) Validate() error {
	sum := 0.0
	for _, v := range []float64{w.Value, w.Ease, w.Freshness, w.Fairness, w.Variety} {
		if v < 0 {
			return ErrInvalidWeights
		}
		sum += v
	}
	if sum <= 0 {
		return ErrInvalidWeights
	}
	return nil
}

// Params holds the matchmaking tuning.
type Params struct {
	Weights Weights

	// ValueScale is the reference balance against which the value signal
	// is log-normalized, giving high balances diminishing returns.
	ValueScale int64

	// FreshnessWindow is how long after an attack a vault counts as
	// recently hit. FreshBonus applies outside the window, StaleBonus
	// inside it.
	FreshnessWindow time.Duration
	FreshBonus      float64
	StaleBonus      float64

	// FairnessBand is the rating distance within which an attacker and a
	// vault's assumed defender count as evenly matched. The assumed
	// defender rating is the vault's security score, which shares the
	// rating scale.
	FairnessBand float64
	FairBonus    float64
	UnfairBonus  float64

	Economy economy.Params
}

// DefaultParams returns the stock matchmaking tuning.
func DefaultParams() Params {
	return Params{
		Weights:         DefaultWeights(),
		ValueScale:      10_000,
		FreshnessWindow: time.Hour,
		FreshBonus:      1.0,
		StaleBonus:      0.25,
		FairnessBand:    15,
		FairBonus:       1.0,
		UnfairBonus:     0.3,
		Economy:         economy.DefaultParams(),
	}
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	if err := p.Weights.Validate(); err != nil {
		return err
	}
	if p.ValueScale <= 0 || p.FreshnessWindow <= 0 || p.FairnessBand < 0 {
		return ErrInvalidParams
	}
	return p.Economy.Validate()
}

// Attractiveness computes the target attractiveness score for one vault:
// a weighted sum of value, ease, freshness, and fairness, minus the full
// variety weight when the vault is in the attacker's recent window.
func (p Params) Attractiveness(v vault.OpponentVault, attacker vault.AttackerContext, now time.Time) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if err := attacker.Validate(); err != nil {
		return 0, err
	}
	if v.Balance < 0 {
		return 0, fmt.Errorf("%w: vault %s", economy.ErrNegativeBalance, v.ID)
	}

	value := math.Log1p(float64(v.Balance)) / math.Log1p(float64(p.ValueScale))

	ease, err := p.Economy.SuccessProbability(attacker.Rating, v.SecurityScore)
	if err != nil {
		return 0, fmt.Errorf("ease signal: %w", err)
	}

	freshness := p.FreshBonus
	if v.LastAttackedAt != nil && now.Sub(*v.LastAttackedAt) < p.FreshnessWindow {
		freshness = p.StaleBonus
	}

	fairness := p.UnfairBonus
	if math.Abs(attacker.Rating-v.SecurityScore) <= p.FairnessBand {
		fairness = p.FairBonus
	}

	score := p.Weights.Value*value +
		p.Weights.Ease*ease +
		p.Weights.Freshness*freshness +
		p.Weights.Fairness*fairness
	if attacker.Recent(v.ID) {
		score -= p.Weights.Variety
	}
	return score, nil
}

// Rank orders a candidate pool by attractiveness, descending, with ties
// broken by vault ID so identical inputs always produce identical
// orderings. The input slice is never mutated; an empty pool ranks to an
// empty pool.
func (p Params) Rank(vaults []vault.OpponentVault, attacker vault.AttackerContext, now time.Time) ([]vault.OpponentVault, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := attacker.Validate(); err != nil {
		return nil, err
	}

	type scored struct {
		v   vault.OpponentVault
		tas float64
	}
	pool := make([]scored, 0, len(vaults))
	for _, v := range vaults {
		tas, err := p.Attractiveness(v, attacker, now)
		if err != nil {
			return nil, fmt.Errorf("score vault %s: %w", v.ID, err)
		}
		pool = append(pool, scored{v: v, tas: tas})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].tas != pool[j].tas {
			return pool[i].tas > pool[j].tas
		}
		return pool[i].v.ID < pool[j].v.ID
	})

	ranked := make([]vault.OpponentVault, 0, len(pool))
	for _, entry := range pool {
		ranked = append(ranked, entry.v)
	}
	return ranked, nil
}

// IsAttackable reports whether the vault's attack cooldown is unset or
// already past. Ranking does not consult it: on-cooldown vaults still
// appear in the feed, deprioritized through freshness.
func IsAttackable(v vault.OpponentVault, now time.Time) bool {
	return v.AttackCooldownUntil == nil || !now.Before(*v.AttackCooldownUntil)
}
