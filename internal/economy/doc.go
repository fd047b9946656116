// Package economy derives the terms of an attack from a vault's strength
// and the attacker's skill rating: the entry fee, the loot bounds, and the
// success probability, plus the display buckets for each.
//
// All functions are pure. Bucketing is driven by explicit ordered
// (upper-bound, value) tables so each domain is partitioned completely,
// with no gaps or overlaps, and the thresholds live in exactly one place.
//
// The success curve is logistic over the gap between attacker rating and
// vault strength, which share a scale. It is bounded away from 0 and 1:
// no vault is un-attackable and none is a free win.
package economy
