package economy

import (
	"errors"
	"math"
)

// ErrNegativeBalance indicates a balance below zero.
var ErrNegativeBalance = errors.New("balance must be non-negative")

// ErrNegativeStrength indicates a security score below zero.
var ErrNegativeStrength = errors.New("strength must be non-negative")

// ErrNegativeRating indicates an attacker rating below zero.
var ErrNegativeRating = errors.New("rating must be non-negative")

// ErrInvalidParams indicates unusable economy parameters.
var ErrInvalidParams = errors.New("economy params are invalid")

// Params holds the economy tuning knobs.
type Params struct {
	// MinFeeRate and MaxFeeRate bound the attack fee as a fraction of the
	// vault balance; the rate interpolates linearly with strength.
	MinFeeRate float64
	MaxFeeRate float64

	// ScoreCeiling is the top of the security score scale. Ratings live on
	// the same scale so the success curve compares them directly.
	ScoreCeiling float64

	// RatingScale is the logistic divisor for the success curve. Smaller
	// values make the curve steeper around an even match.
	RatingScale float64

	// ProbabilityFloor keeps success probability inside
	// (ProbabilityFloor, 1-ProbabilityFloor) so no vault is ever a
	// guaranteed success or a guaranteed failure.
	ProbabilityFloor float64
}

// DefaultParams returns the stock economy tuning.
func DefaultParams() Params {
	return Params{
		MinFeeRate:       0.02,
		MaxFeeRate:       0.12,
		ScoreCeiling:     100,
		RatingScale:      18,
		ProbabilityFloor: 0.005,
	}
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	if p.MinFeeRate < 0 || p.MaxFeeRate < p.MinFeeRate || p.MaxFeeRate >= 1 {
		return ErrInvalidParams
	}
	if p.ScoreCeiling <= 0 || p.RatingScale <= 0 {
		return ErrInvalidParams
	}
	if p.ProbabilityFloor <= 0 || p.ProbabilityFloor >= 0.5 {
		return ErrInvalidParams
	}
	return nil
}

// AttackFee derives the cost of attempting a vault from its balance and
// strength. The fee is monotonically increasing in both inputs and always
// strictly below the balance, so an attack can never cost the full pot.
func (p Params) AttackFee(balance int64, strength float64) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if balance < 0 {
		return 0, ErrNegativeBalance
	}
	if strength < 0 {
		return 0, ErrNegativeStrength
	}

	fraction := strength / p.ScoreCeiling
	if fraction > 1 {
		fraction = 1
	}
	rate := p.MinFeeRate + (p.MaxFeeRate-p.MinFeeRate)*fraction
	fee := int64(math.Round(float64(balance) * rate))
	if balance > 0 && fee >= balance {
		fee = balance - 1
	}
	return fee, nil
}

// SuccessProbability estimates the attacker's odds against a vault of the
// given strength. The curve is logistic over the rating-strength gap:
// decreasing in strength, increasing in rating, and bounded away from both
// 0 and 1 by the probability floor.
func (p Params) SuccessProbability(rating, strength float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if rating < 0 {
		return 0, ErrNegativeRating
	}
	if strength < 0 {
		return 0, ErrNegativeStrength
	}

	odds := 1 / (1 + math.Exp((strength-rating)/p.RatingScale))
	if odds < p.ProbabilityFloor {
		odds = p.ProbabilityFloor
	}
	if odds > 1-p.ProbabilityFloor {
		odds = 1 - p.ProbabilityFloor
	}
	return odds, nil
}
