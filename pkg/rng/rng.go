package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// RNG is a deterministic random source derived from a universe seed string
// and a label. Per generation run, the scheduler derives one RNG per
// attempt, and sub-RNGs are split off it with Derive; everything else
// funnels through these so that (settings.seed, settings.world_settings)
// uniquely determines the output.
//
// Derivation follows the formula seed = H(masterSeed, 0x00, label) where H is
// SHA-256 and the first 8 bytes become the underlying PRNG's seed, the same
// scheme dungo/pkg/rng uses to isolate pipeline stages, here used to isolate
// generation attempts instead.
type RNG struct {
	seed      uint64
	stageName string
	source    *rand.Rand
}

// NewRNG derives a stage/label-specific RNG from a master seed string.
// masterSeed is the universe's string seed (settings.seed); label
// identifies the derivation context (e.g. "universe", "attempt:3",
// "world:1:forced-progression").
func NewRNG(masterSeed string, label string) *RNG {
	h := sha256.New()
	h.Write([]byte(masterSeed))
	h.Write([]byte{0})
	h.Write([]byte(label))

	hash := h.Sum(nil)
	derivedSeed := binary.BigEndian.Uint64(hash[:8])

	return &RNG{
		seed:      derivedSeed,
		stageName: label,
		source:    rand.New(rand.NewSource(int64(derivedSeed))),
	}
}

// NewAttemptRNG derives the RNG for scheduler attempt index attempt (the
// scheduler counts attempts from 0) of the universe identified by masterSeed, per spec §9's
// "hash(settings.seed || attempt_index)" rule.
func NewAttemptRNG(masterSeed string, attempt int) *RNG {
	return NewRNG(masterSeed, fmt.Sprintf("attempt:%d", attempt))
}

// Derive creates a new sub-RNG seeded deterministically from this RNG's
// label and the given sub-label, for callers that need independent
// streams (e.g. one per world) without re-deriving from the universe seed.
func (r *RNG) Derive(subLabel string) *RNG {
	return NewRNG(fmt.Sprintf("%s:%d", r.stageName, r.seed), subLabel)
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
// The sequence is deterministic based on the RNG's seed.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n).
// It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements in slice.
// The shuffle is deterministic based on the RNG's seed.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Seed returns the derived seed for this RNG.
// This is useful for debugging and logging which seed was used for a stage.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// StageName returns the stage name this RNG was created for.
// This is useful for debugging and logging.
func (r *RNG) StageName() string {
	return r.stageName
}

// IntRange returns a pseudo-random integer in [min, max].
// It panics if min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("rng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max).
// It panics if min >= max.
func (r *RNG) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("rng: Float64Range min must be < max")
	}
	return min + r.source.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean value.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// WeightedChoice selects an index from weights using weighted random selection.
// Weights must be non-negative. Returns -1 if all weights are zero or weights is empty.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	// Calculate total weight
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}

	if total == 0 {
		return -1
	}

	// Generate random value in [0, total)
	randVal := r.Float64() * total

	// Find the weighted index
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}

	// Should not reach here, but return last index if we do
	return len(weights) - 1
}
