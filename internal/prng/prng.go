// Package prng provides the splittable deterministic random source the
// generators consume. A Key is a 64-bit seed from which independent sub-keys
// are derived; every sub-decision in the splitting engine draws from its own
// key, in a fixed derivation order, so a run is a pure function of the
// top-level seed.
package prng

import "math/rand/v2"

// Key is an immutable seed for one decision (or for deriving sub-keys).
type Key uint64

// NewKey wraps a raw seed.
func NewKey(seed uint64) Key { return Key(seed) }

// mix64 is the SplitMix64 finalizer. It decorrelates derived keys.
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Fold derives a child key from k and an index. Children with distinct
// indices are uncorrelated with each other and with k.
func (k Key) Fold(i uint64) Key {
	return Key(mix64(uint64(k) ^ mix64(i+1)))
}

// Split derives two sub-keys.
func (k Key) Split() (Key, Key) {
	return k.Fold(0), k.Fold(1)
}

// SplitN derives n sub-keys.
func (k Key) SplitN(n int) []Key {
	keys := make([]Key, n)
	for i := range keys {
		keys[i] = k.Fold(uint64(i))
	}
	return keys
}

// rng returns a PCG generator seeded from the key. Each key backs a single
// draw, so the generator is never reused across decisions.
func (k Key) rng() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(k), mix64(uint64(k))))
}

// IntN draws a uniform integer in [lo, hi). Callers must ensure hi > lo.
func (k Key) IntN(lo, hi int32) int32 {
	return lo + int32(k.rng().Int64N(int64(hi-lo)))
}

// Float64 draws a uniform real in [0, 1).
func (k Key) Float64() float64 {
	return k.rng().Float64()
}

// WeightedIndex draws an index with probability proportional to its weight.
// Zero-weight entries can never be chosen. Returns -1 when all weights are
// zero.
func (k Key) WeightedIndex(weights []int64) int {
	var total int64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	v := k.rng().Int64N(total)
	for i, w := range weights {
		if v < w {
			return i
		}
		v -= w
	}
	return len(weights) - 1
}
