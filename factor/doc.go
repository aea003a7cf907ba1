// Package factor provides the Factor value type: a categorical encoding
// that pairs an ordered list of distinct labels ("levels") with one
// integer code per observation.
//
// Overview:
//
//   - A Factor is built from raw label sequences, either inferring its
//     level list (sorted distinct values, byte-wise lexicographic) or
//     accepting an explicit one. Raw values absent from an explicit level
//     list become Missing-coded observations, never errors.
//   - Every operation returns a new Factor; nothing mutates in place.
//     Accessors return defensive copies, so values you hold are stable
//     even while derived Factors are produced from them.
//   - Levels carry both the permitted label set and its rank/display
//     order. Counting, unique views, and the reorder package all follow
//     level order deterministically.
//
// When to use:
//
//   - Encoding a string column into compact integer codes with an
//     explicit, inspectable ordering.
//   - Tallying occurrences per category, including categories that occur
//     zero times (Count never drops a level).
//   - Normalizing several columns onto one shared level set before
//     comparing or stacking them (Unify), or appending one encoded column
//     to another (Combine).
//
// Key operations:
//
//   - New / NewWithLevels / FromCodes — construction; see each for the
//     exact level-ordering and validation rules.
//   - Count / Unique / UniqueByAppearance — level-ordered tallies and
//     distinct-value views; Unique follows level order, UniqueByAppearance
//     follows first-appearance order.
//   - RenameLevels — replace label text positionally; codes untouched.
//   - Relevel — reorder (or subset) the level list; codes remapped so
//     every observation keeps its label, dropped levels become Missing.
//   - Combine / Unify — merge level sets under the left-priority union
//     rule: left operand's levels first in their order, unseen right
//     levels appended in theirs.
//
// Performance and complexity:
//
//   - Construction: O(n log n) with inferred levels (the sort dominates),
//     O(n + L) with explicit levels, for n observations and L levels.
//   - Count, Unique, Relevel, Combine, Unify: linear in observations plus
//     levels touched. No operation is ever super-linear except New's sort.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidLevels:
//     an explicit or replacement level list contains duplicate entries.
//   - ErrLengthMismatch:
//     RenameLevels was given a label list whose length differs from the
//     current level count.
//   - ErrUnknownLevel:
//     Relevel referenced a label that is not a current level.
//   - ErrCodeRange:
//     FromCodes was given a code outside [0, len(levels)) that is not
//     Missing.
//   - ErrNilFactor:
//     a nil *Factor was passed to a transform that requires a value.
//
// Thread safety:
//
//   - Factors are immutable after construction: concurrent reads of one
//     instance, and concurrent transforms over distinct instances, are
//     safe without synchronization.
//
// See also:
//
//   - reorder: level-order transforms (frequency, appearance, reverse,
//     shift, shuffle) built on this package's public API.
package factor
