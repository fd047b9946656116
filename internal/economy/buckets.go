package economy

import "math"

// DifficultyBand is the display band a security score falls into.
type DifficultyBand int

const (
	BandUnspecified DifficultyBand = iota
	BandSoft
	BandGuarded
	BandHardened
	BandFortified
	BandImpenetrable
)

func (b DifficultyBand) String() string {
	switch b {
	case BandSoft:
		return "Soft Target"
	case BandGuarded:
		return "Guarded"
	case BandHardened:
		return "Hardened"
	case BandFortified:
		return "Fortified"
	case BandImpenetrable:
		return "Impenetrable"
	default:
		return "Unspecified"
	}
}

// ChanceLabel is the display label for a success probability.
type ChanceLabel int

const (
	ChanceUnspecified ChanceLabel = iota
	ChanceLongShot
	ChanceRisky
	ChanceCoinFlip
	ChanceFavorable
	ChanceEasyPickings
)

func (l ChanceLabel) String() string {
	switch l {
	case ChanceLongShot:
		return "Long Shot"
	case ChanceRisky:
		return "Risky"
	case ChanceCoinFlip:
		return "Coin Flip"
	case ChanceFavorable:
		return "Favorable"
	case ChanceEasyPickings:
		return "Easy Pickings"
	default:
		return "Unspecified"
	}
}

// LootRange bounds the loot paid out by a successful attack.
type LootRange struct {
	Min int64
	Max int64
}

// Each bucketing table is an ordered list of (upper bound, value) steps.
// A lookup walks the steps in order and takes the first whose bound the
// input falls under; the final step carries an infinite bound so every
// input lands in exactly one bucket.

type bandStep struct {
	upper float64
	band  DifficultyBand
}

var bandSteps = []bandStep{
	{upper: 20, band: BandSoft},
	{upper: 40, band: BandGuarded},
	{upper: 60, band: BandHardened},
	{upper: 80, band: BandFortified},
	{upper: math.Inf(1), band: BandImpenetrable},
}

type chanceStep struct {
	upper float64
	label ChanceLabel
}

var chanceSteps = []chanceStep{
	{upper: 0.15, label: ChanceLongShot},
	{upper: 0.35, label: ChanceRisky},
	{upper: 0.55, label: ChanceCoinFlip},
	{upper: 0.75, label: ChanceFavorable},
	{upper: math.Inf(1), label: ChanceEasyPickings},
}

type lootStep struct {
	upper   int64
	minFrac float64
	maxFrac float64
}

var lootSteps = []lootStep{
	{upper: 1_000, minFrac: 0.35, maxFrac: 0.60},
	{upper: 5_000, minFrac: 0.30, maxFrac: 0.55},
	{upper: 20_000, minFrac: 0.25, maxFrac: 0.50},
	{upper: math.MaxInt64, minFrac: 0.20, maxFrac: 0.45},
}

// Band buckets a security score into its display band.
func Band(strength float64) (DifficultyBand, error) {
	if strength < 0 {
		return BandUnspecified, ErrNegativeStrength
	}
	for _, step := range bandSteps {
		if strength < step.upper {
			return step.band, nil
		}
	}
	return BandImpenetrable, nil
}

// ChanceLabelFor buckets a success probability into its display label.
func ChanceLabelFor(probability float64) ChanceLabel {
	for _, step := range chanceSteps {
		if probability < step.upper {
			return step.label
		}
	}
	return ChanceEasyPickings
}

// LootBounds derives the loot range for a vault balance. Richer vaults pay
// out a smaller fraction of their pot, bucketed by balance bracket.
func LootBounds(balance int64) (LootRange, error) {
	if balance < 0 {
		return LootRange{}, ErrNegativeBalance
	}
	step := lootSteps[len(lootSteps)-1]
	for _, candidate := range lootSteps {
		if balance < candidate.upper {
			step = candidate
			break
		}
	}
	return LootRange{
		Min: int64(math.Round(float64(balance) * step.minFrac)),
		Max: int64(math.Round(float64(balance) * step.maxFrac)),
	}, nil
}
