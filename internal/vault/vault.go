package vault

import (
	"errors"
	"time"

	"github.com/louisbranch/heist.space/internal/economy"
)

// ErrNegativeRating indicates an attacker rating below zero.
var ErrNegativeRating = errors.New("attacker rating must be non-negative")

// OpponentVault is a fully derived opponent snapshot. The derived fields
// (SecurityScore, Band, Loot, AttackFee, SuccessChance) are always computed
// together from Balance and Loadout, never patched individually.
type OpponentVault struct {
	ID            string
	Name          string
	Balance       int64
	SecurityScore float64
	Loadout       Loadout
	Band          economy.DifficultyBand
	Loot          economy.LootRange
	AttackFee     int64
	SuccessChance economy.ChanceLabel

	// Gameplay timestamps owned by the surrounding application. Nil means
	// the vault has never been attacked / has no active cooldown.
	LastAttackedAt      *time.Time
	AttackCooldownUntil *time.Time
}

// AttackerContext carries the per-request attacker state: the skill rating
// on the same scale as security scores, and a bounded window of recently
// attacked vault IDs used for the variety penalty.
type AttackerContext struct {
	Rating         float64
	RecentVaultIDs []string
}

// Validate checks the context for usable values.
func (c AttackerContext) Validate() error {
	if c.Rating < 0 {
		return ErrNegativeRating
	}
	return nil
}

// Recent reports whether the given vault ID is in the attacker's recent
// window.
func (c AttackerContext) Recent(vaultID string) bool {
	for _, id := range c.RecentVaultIDs {
		if id == vaultID {
			return true
		}
	}
	return false
}
