// Package rng provides deterministic random number generation for seed
// generation.
//
// # Overview
//
// The RNG type ensures reproducible seed generation by deriving
// label-specific seeds from a master seed string. This allows the
// scheduler to re-derive a fresh RNG per retry attempt, and per
// sub-concern within an attempt, while the whole universe remains fully
// determined by (settings.seed, settings.world_settings) as required by
// spec §5 and §9.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_label = H(masterSeed, label)
//
// where masterSeed is the universe's string seed and label identifies the
// derivation context (e.g. "attempt:3"). This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different labels get independent random sequences (isolation)
//
// # Usage
//
//	attemptRNG := rng.NewAttemptRNG(settings.Seed, attempt)
//	worldRNG := attemptRNG.Derive(fmt.Sprintf("world:%d", worldIndex))
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance.
package rng
