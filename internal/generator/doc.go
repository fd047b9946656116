// Package generator procedurally builds opponent vaults with a requested
// difficulty profile.
//
// Each bias (easy, mixed, hard) maps to a sampling profile for balance and
// target strength. A generated vault's loadout spreads the target score
// across up to MaxModules distinct challenge kinds with bounded per-module
// noise, and every derived field (score, band, fee, loot bounds, success
// label) is computed through the scorer and economy calculator so the
// emitted snapshot is internally consistent.
//
// Randomness is injected: callers supply the *rand.Rand, and identical
// seeds reproduce identical feeds. The generator keeps no hidden state
// between calls.
package generator
