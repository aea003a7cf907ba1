// Package reorder provides level-order transforms over a factor.Factor:
// frequency ordering, first-appearance ordering, reversal, rotation, and
// random shuffling.
//
// Overview:
//
//   - Every transform produces a new Factor and remaps its codes so each
//     observation keeps pointing at the same label — only the rank /
//     display order of the levels changes. Inputs are never mutated.
//   - Transforms are built entirely on factor's public API (Levels, Count,
//     Relevel), so they uphold exactly the same invariants as the factor
//     package itself.
//
// Key operations:
//
//   - ByFrequency:   levels ordered by occurrence count, descending or
//     ascending; ties keep their original relative order (stable).
//   - ByAppearance:  a fresh Factor whose level order is first-appearance
//     order of the raw labels.
//   - Reverse:       level order reversed; an involution.
//   - Shift:         level order rotated with wraparound; negative n
//     rotates left by |n|, positive n rotates right.
//   - Shuffle / ShuffleLabels: uniformly random level permutation from an
//     injected *rand.Rand; nil falls back to a fixed default seed so
//     results stay reproducible.
//
// Determinism:
//
//   - ByFrequency, ByAppearance, Reverse, and Shift are fully
//     deterministic. Shuffle is deterministic per RNG state: equal seeds
//     produce equal level orders across runs and platforms.
//
// Performance:
//
//   - All transforms run in O(n + L) for n observations and L levels,
//     except ByFrequency's O(L log L) sort and ShuffleLabels' O(n log n)
//     default construction.
//
// Error handling (sentinel errors):
//
//   - ErrNilFactor:
//     a nil *factor.Factor was passed to a transform.
//
// See also:
//
//   - factor: the Factor value type, construction, counting, and merging.
package reorder
