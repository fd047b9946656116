// Package vault defines the core domain types of the heist engine and the
// security scorer that folds a vault's challenge loadout into a single
// comparable strength value.
//
// # Challenge modules
//
// A vault is protected by an ordered loadout of challenge modules. Each
// module has a kind drawn from a fixed catalog of 35 challenge kinds, a
// per-instance difficulty in [0,1], and a per-kind weight from the catalog.
//
// # Scoring
//
// The security score is the weighted difficulty sum normalized so that a
// loadout of MaxModules modules of the heaviest kind, all at difficulty 1,
// maps exactly to the configured ceiling (100 by default). Every other
// legal loadout lands strictly below it. Scoring is deterministic and has
// no side effects; it fails only on empty, oversized, or malformed input.
//
// Loadouts cache their effective score at construction and are replaced
// wholesale on edit, so the cached score can never drift from the module
// list it was computed from.
package vault
