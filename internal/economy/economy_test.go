package economy

import (
	"errors"
	"testing"
)

// TestAttackFeeBounds ensures the fee stays non-negative and strictly
// below the balance across a spread of inputs.
func TestAttackFeeBounds(t *testing.T) {
	params := DefaultParams()
	balances := []int64{0, 1, 10, 999, 5_000, 250_000}
	strengths := []float64{0, 5, 40, 80, 100, 150}

	for _, balance := range balances {
		for _, strength := range strengths {
			fee, err := params.AttackFee(balance, strength)
			if err != nil {
				t.Fatalf("AttackFee(%d, %v) returned error: %v", balance, strength, err)
			}
			if fee < 0 {
				t.Fatalf("AttackFee(%d, %v) = %d, want non-negative", balance, strength, fee)
			}
			if balance > 0 && fee >= balance {
				t.Fatalf("AttackFee(%d, %v) = %d, want < balance", balance, strength, fee)
			}
		}
	}
}

// TestAttackFeeMonotonic ensures the fee never decreases when either
// input grows.
func TestAttackFeeMonotonic(t *testing.T) {
	params := DefaultParams()

	previous := int64(-1)
	for _, balance := range []int64{100, 1_000, 10_000, 100_000} {
		fee, err := params.AttackFee(balance, 50)
		if err != nil {
			t.Fatalf("AttackFee returned error: %v", err)
		}
		if fee < previous {
			t.Fatalf("fee %d decreased below %d as balance grew", fee, previous)
		}
		previous = fee
	}

	previous = -1
	for _, strength := range []float64{0, 25, 50, 75, 100} {
		fee, err := params.AttackFee(10_000, strength)
		if err != nil {
			t.Fatalf("AttackFee returned error: %v", err)
		}
		if fee < previous {
			t.Fatalf("fee %d decreased below %d as strength grew", fee, previous)
		}
		previous = fee
	}
}

// TestAttackFeeRejectsNegativeInput ensures negative balances and
// strengths fail fast.
func TestAttackFeeRejectsNegativeInput(t *testing.T) {
	params := DefaultParams()

	if _, err := params.AttackFee(-1, 50); !errors.Is(err, ErrNegativeBalance) {
		t.Fatalf("balance error = %v, want %v", err, ErrNegativeBalance)
	}
	if _, err := params.AttackFee(100, -1); !errors.Is(err, ErrNegativeStrength) {
		t.Fatalf("strength error = %v, want %v", err, ErrNegativeStrength)
	}
}

// TestSuccessProbabilityOpenInterval ensures odds stay strictly inside
// (0,1) even at extreme gaps.
func TestSuccessProbabilityOpenInterval(t *testing.T) {
	params := DefaultParams()
	tcs := []struct {
		rating   float64
		strength float64
	}{
		{rating: 0, strength: 100},
		{rating: 100, strength: 0},
		{rating: 0, strength: 10_000},
		{rating: 10_000, strength: 0},
		{rating: 50, strength: 50},
	}

	for _, tc := range tcs {
		p, err := params.SuccessProbability(tc.rating, tc.strength)
		if err != nil {
			t.Fatalf("SuccessProbability(%v, %v) returned error: %v", tc.rating, tc.strength, err)
		}
		if p <= 0 || p >= 1 {
			t.Fatalf("SuccessProbability(%v, %v) = %v, want in (0,1)", tc.rating, tc.strength, p)
		}
	}
}

// TestSuccessProbabilityMonotonic ensures odds fall with strength and
// rise with rating.
func TestSuccessProbabilityMonotonic(t *testing.T) {
	params := DefaultParams()

	previous := 2.0
	for _, strength := range []float64{0, 20, 40, 60, 80} {
		p, err := params.SuccessProbability(50, strength)
		if err != nil {
			t.Fatalf("SuccessProbability returned error: %v", err)
		}
		if p >= previous {
			t.Fatalf("odds %v did not fall as strength grew past %v", p, previous)
		}
		previous = p
	}

	previous = -1
	for _, rating := range []float64{0, 20, 40, 60, 80} {
		p, err := params.SuccessProbability(rating, 50)
		if err != nil {
			t.Fatalf("SuccessProbability returned error: %v", err)
		}
		if p <= previous {
			t.Fatalf("odds %v did not rise as rating grew past %v", p, previous)
		}
		previous = p
	}
}

// TestSuccessProbabilityEvenMatch ensures an even match is a coin flip.
func TestSuccessProbabilityEvenMatch(t *testing.T) {
	params := DefaultParams()
	p, err := params.SuccessProbability(50, 50)
	if err != nil {
		t.Fatalf("SuccessProbability returned error: %v", err)
	}
	if p != 0.5 {
		t.Fatalf("even-match odds = %v, want 0.5", p)
	}
}

// TestSuccessProbabilityRejectsNegativeInput ensures negative inputs fail
// fast.
func TestSuccessProbabilityRejectsNegativeInput(t *testing.T) {
	params := DefaultParams()

	if _, err := params.SuccessProbability(-1, 50); !errors.Is(err, ErrNegativeRating) {
		t.Fatalf("rating error = %v, want %v", err, ErrNegativeRating)
	}
	if _, err := params.SuccessProbability(50, -1); !errors.Is(err, ErrNegativeStrength) {
		t.Fatalf("strength error = %v, want %v", err, ErrNegativeStrength)
	}
}

// TestParamsValidate ensures malformed parameter sets are rejected.
func TestParamsValidate(t *testing.T) {
	tcs := []struct {
		name   string
		mutate func(*Params)
	}{
		{name: "negative min fee rate", mutate: func(p *Params) { p.MinFeeRate = -0.1 }},
		{name: "max below min", mutate: func(p *Params) { p.MaxFeeRate = 0.01 }},
		{name: "max rate at one", mutate: func(p *Params) { p.MaxFeeRate = 1 }},
		{name: "zero ceiling", mutate: func(p *Params) { p.ScoreCeiling = 0 }},
		{name: "zero rating scale", mutate: func(p *Params) { p.RatingScale = 0 }},
		{name: "zero floor", mutate: func(p *Params) { p.ProbabilityFloor = 0 }},
		{name: "floor at half", mutate: func(p *Params) { p.ProbabilityFloor = 0.5 }},
	}

	for _, tc := range tcs {
		params := DefaultParams()
		tc.mutate(&params)
		if err := params.Validate(); !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("%s: Validate error = %v, want %v", tc.name, err, ErrInvalidParams)
		}
	}

	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
}
