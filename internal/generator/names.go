package generator

import (
	"fmt"
	"math/rand"
)

var vaultAdjectives = []string{
	"Gilded", "Rusty", "Midnight", "Crimson", "Hollow", "Silent",
	"Copper", "Obsidian", "Velvet", "Ivory", "Smoldering", "Frostbound",
	"Clockwork", "Sunken", "Wandering", "Forgotten",
}

var vaultNouns = []string{
	"Strongbox", "Lockbox", "Reliquary", "Coffer", "Depository", "Cache",
	"Safehouse", "Treasury", "Stronghold", "Footlocker", "Crypt", "Hoard",
	"Vault", "Stockpile", "Warchest", "Ledger",
}

// vaultName generates a themed display name like "The Gilded Strongbox".
func vaultName(rng *rand.Rand) string {
	adj := vaultAdjectives[rng.Intn(len(vaultAdjectives))]
	noun := vaultNouns[rng.Intn(len(vaultNouns))]
	return fmt.Sprintf("The %s %s", adj, noun)
}
