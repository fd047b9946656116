package economy

import (
	"errors"
	"math/rand"
)

// ErrInvalidLootRange indicates a loot range with Max below Min or a
// negative bound.
var ErrInvalidLootRange = errors.New("loot range must satisfy 0 <= min <= max")

// RollLoot draws the actual payout for a successful attack uniformly from
// the vault's loot range. The surrounding attack-settlement flow supplies
// the random source.
func RollLoot(rng *rand.Rand, bounds LootRange) (int64, error) {
	if bounds.Min < 0 || bounds.Max < bounds.Min {
		return 0, ErrInvalidLootRange
	}
	if bounds.Min == bounds.Max {
		return bounds.Min, nil
	}
	return bounds.Min + rng.Int63n(bounds.Max-bounds.Min+1), nil
}
