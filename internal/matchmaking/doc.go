// Package matchmaking orders a pool of candidate vaults for feed
// presentation.
//
// Each vault gets a target attractiveness score: a weighted sum of a
// log-normalized value signal, the attacker's success probability, a
// freshness bonus keyed on the last attack time, and a fairness bonus for
// rating parity, minus a variety penalty for recently attacked targets.
// The weights and constants are tuning parameters, exposed on Params
// rather than hard-coded.
//
// Ranking is a total, non-mutating function of its inputs; "now" is
// supplied by the caller, so there are no internal timers.
package matchmaking
