package economy

import (
	"errors"
	"testing"
)

// TestBandPartitionsScale ensures every strength maps to exactly one band
// and boundaries fall into the upper bucket.
func TestBandPartitionsScale(t *testing.T) {
	tcs := []struct {
		strength float64
		want     DifficultyBand
	}{
		{strength: 0, want: BandSoft},
		{strength: 19.99, want: BandSoft},
		{strength: 20, want: BandGuarded},
		{strength: 39.99, want: BandGuarded},
		{strength: 40, want: BandHardened},
		{strength: 60, want: BandFortified},
		{strength: 80, want: BandImpenetrable},
		{strength: 100, want: BandImpenetrable},
		{strength: 5_000, want: BandImpenetrable},
	}

	for _, tc := range tcs {
		band, err := Band(tc.strength)
		if err != nil {
			t.Fatalf("Band(%v) returned error: %v", tc.strength, err)
		}
		if band != tc.want {
			t.Fatalf("Band(%v) = %v, want %v", tc.strength, band, tc.want)
		}

		again, err := Band(tc.strength)
		if err != nil {
			t.Fatalf("Band(%v) returned error on repeat: %v", tc.strength, err)
		}
		if again != band {
			t.Fatalf("Band(%v) not idempotent: %v then %v", tc.strength, band, again)
		}
	}
}

// TestBandRejectsNegativeStrength ensures negative scores error.
func TestBandRejectsNegativeStrength(t *testing.T) {
	if _, err := Band(-1); !errors.Is(err, ErrNegativeStrength) {
		t.Fatalf("Band error = %v, want %v", err, ErrNegativeStrength)
	}
}

// TestChanceLabelPartitions ensures every probability maps to exactly one
// label.
func TestChanceLabelPartitions(t *testing.T) {
	tcs := []struct {
		probability float64
		want        ChanceLabel
	}{
		{probability: 0.01, want: ChanceLongShot},
		{probability: 0.15, want: ChanceRisky},
		{probability: 0.34, want: ChanceRisky},
		{probability: 0.35, want: ChanceCoinFlip},
		{probability: 0.55, want: ChanceFavorable},
		{probability: 0.75, want: ChanceEasyPickings},
		{probability: 0.99, want: ChanceEasyPickings},
	}

	for _, tc := range tcs {
		label := ChanceLabelFor(tc.probability)
		if label != tc.want {
			t.Fatalf("ChanceLabelFor(%v) = %v, want %v", tc.probability, label, tc.want)
		}
	}
}

// TestLootBoundsBrackets ensures richer vaults pay out smaller fractions
// and bounds never invert.
func TestLootBoundsBrackets(t *testing.T) {
	tcs := []struct {
		balance int64
		wantMin int64
		wantMax int64
	}{
		{balance: 0, wantMin: 0, wantMax: 0},
		{balance: 100, wantMin: 35, wantMax: 60},
		{balance: 999, wantMin: 350, wantMax: 599},
		{balance: 1_000, wantMin: 300, wantMax: 550},
		{balance: 10_000, wantMin: 2_500, wantMax: 5_000},
		{balance: 100_000, wantMin: 20_000, wantMax: 45_000},
	}

	for _, tc := range tcs {
		bounds, err := LootBounds(tc.balance)
		if err != nil {
			t.Fatalf("LootBounds(%d) returned error: %v", tc.balance, err)
		}
		if bounds.Min != tc.wantMin || bounds.Max != tc.wantMax {
			t.Fatalf("LootBounds(%d) = %+v, want {%d %d}", tc.balance, bounds, tc.wantMin, tc.wantMax)
		}
		if bounds.Min > bounds.Max {
			t.Fatalf("LootBounds(%d) inverted: %+v", tc.balance, bounds)
		}
	}
}

// TestLootBoundsRejectsNegativeBalance ensures negative balances error.
func TestLootBoundsRejectsNegativeBalance(t *testing.T) {
	if _, err := LootBounds(-1); !errors.Is(err, ErrNegativeBalance) {
		t.Fatalf("LootBounds error = %v, want %v", err, ErrNegativeBalance)
	}
}

// TestBucketLabels ensures display strings are wired for every bucket.
func TestBucketLabels(t *testing.T) {
	bands := []DifficultyBand{BandSoft, BandGuarded, BandHardened, BandFortified, BandImpenetrable}
	for _, band := range bands {
		if band.String() == "Unspecified" {
			t.Fatalf("band %d has no label", band)
		}
	}

	labels := []ChanceLabel{ChanceLongShot, ChanceRisky, ChanceCoinFlip, ChanceFavorable, ChanceEasyPickings}
	for _, label := range labels {
		if label.String() == "Unspecified" {
			t.Fatalf("label %d has no display string", label)
		}
	}
}
