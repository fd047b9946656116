// Package random provides seed and generator helpers for the engine's
// deterministic randomness model.
//
// Every randomness-consuming component takes an explicit *rand.Rand; there
// is no ambient global state. NewSeed produces high-entropy seeds from
// crypto/rand for live play, while tests and replay tooling pass fixed
// seeds for reproducible output.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRNG creates a seeded random number generator. A zero seed selects a
// time-based seed; the chosen seed is returned so callers can report it
// for reproducibility.
func NewRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
