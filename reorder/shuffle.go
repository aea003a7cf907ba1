// File: shuffle.go
// Role: random level permutation with deterministic defaults.
//
// Goals:
//   - Determinism: same *rand.Rand state ⇒ identical level order.
//   - Encapsulation: a single RNG fallback; no time-based sources hidden anywhere.
//   - Safety: the observation-to-label mapping is never disturbed, only rank order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; create one per caller instead.

package reorder

import (
	"math/rand"

	"github.com/katalvlaran/lvlcat/factor"
)

// defaultRNGSeed is the fixed seed used when callers pass a nil source.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// ensureRNG returns rng, or a deterministic default stream when rng is nil.
func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(defaultRNGSeed))
	}

	return rng
}

// shuffleStringsInPlace performs an in-place Fisher–Yates shuffle of a.
// Complexity: O(L) time, O(1) extra space.
func shuffleStringsInPlace(a []string, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Shuffle returns a Factor whose levels are a uniformly random permutation
// of f's levels, drawn from rng; codes are remapped so each observation
// keeps its label. Pass a seeded *rand.Rand for reproducible runs; a nil
// rng falls back to a fixed default seed, so tests stay deterministic
// without one.
//
// Returns ErrNilFactor on nil input.
//
// Complexity: O(n + L).
func Shuffle(f *factor.Factor, rng *rand.Rand) (*factor.Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	levels := f.Levels()
	shuffleStringsInPlace(levels, ensureRNG(rng))

	return f.Relevel(levels)
}

// ShuffleLabels builds a Factor from raw with default construction
// (sorted distinct levels, see factor.New) and then shuffles its level
// order with rng under the same policy as Shuffle.
//
// Complexity: O(n log n + L).
func ShuffleLabels(raw []string, rng *rand.Rand) *factor.Factor {
	out, err := Shuffle(factor.New(raw), rng)
	if err != nil {
		// factor.New never returns nil; reaching here is a bug.
		panic(err)
	}

	return out
}
