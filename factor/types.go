// Package factor defines the Factor value type, its sentinel errors,
// and the Count result type for per-level tallies.
//
// A Factor pairs an ordered list of distinct labels ("levels") with a
// sequence of integer codes, one per observation. Each code is either a
// valid index into the level list or the Missing marker.
//
// Invariants (enforced by every constructor and transform):
//
//	– levels contains no duplicate entries.
//	– every code is in [0, len(levels)) or equals Missing.
//	– len(codes) equals the number of observations, always.
//
// Errors (sentinel):
//
//	– ErrInvalidLevels  if a supplied level list contains duplicates.
//	– ErrLengthMismatch if RenameLevels is given a wrong-length label list.
//	– ErrUnknownLevel   if Relevel references a label absent from the levels.
//	– ErrCodeRange      if FromCodes is given a code outside the valid range.
//	– ErrNilFactor      if a nil *Factor is passed where a value is required.
package factor

import (
	"errors"
	"fmt"
)

// Missing is the sentinel code recording an observation with no level.
// A raw value absent from an explicit level list is Missing-coded rather
// than rejected; only malformed level lists are errors.
const Missing = -1

// Sentinel errors for factor construction and transforms.
var (
	// ErrInvalidLevels indicates a level list with duplicate entries.
	ErrInvalidLevels = errors.New("factor: level list contains duplicates")

	// ErrLengthMismatch indicates a replacement label list whose length
	// differs from the current number of levels.
	ErrLengthMismatch = errors.New("factor: label list length does not match level count")

	// ErrUnknownLevel indicates a referenced label that is not a level.
	ErrUnknownLevel = errors.New("factor: unknown level")

	// ErrCodeRange indicates a code outside [0, len(levels)) and not Missing.
	ErrCodeRange = errors.New("factor: code out of range")

	// ErrNilFactor indicates a nil *Factor argument or receiver.
	ErrNilFactor = errors.New("factor: factor is nil")
)

// Factor is an immutable categorical encoding: an ordered level list plus
// one integer code per observation.
//
// The zero value is an empty Factor (no levels, no observations) and is
// safe to use. All exported methods treat the receiver as read-only and
// return fresh values; a Factor never changes after you obtain it, so
// concurrent reads need no synchronization.
type Factor struct {
	levels []string // ordered, distinct level labels
	codes  []int    // codes[i] indexes levels, or Missing
}

// Count holds per-level occurrence totals for a Factor.
//
// Levels preserves the Factor's level order, including levels that occur
// zero times; N[i] is the number of observations coded to Levels[i].
// Missing counts observations with no level. Count is a plain value:
// mutate it freely without affecting the Factor it came from.
type Count struct {
	Levels  []string // level labels in level order
	N       []int    // N[i] = occurrences of Levels[i]
	Missing int      // observations coded Missing
}

// Total returns the number of observations accounted for: the sum of all
// per-level totals plus the missing total. For any Factor f,
// f.Count().Total() == f.Len().
func (c Count) Total() int {
	total := c.Missing
	for _, n := range c.N {
		total += n
	}

	return total
}

// Of returns the occurrence total for label, and whether label is a level.
// Lookup is a linear scan; Count is sized by levels, not observations.
func (c Count) Of(label string) (int, bool) {
	for i, lvl := range c.Levels {
		if lvl == label {
			return c.N[i], true
		}
	}

	return 0, false
}

// cloneStrings returns a fresh copy of s. A nil or empty input yields an
// empty, non-nil slice so callers can rely on len==cap==0 semantics.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)

	return out
}

// cloneInts returns a fresh copy of s, never nil.
func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// indexLevels builds the label→position map for levels, rejecting
// duplicates with ErrInvalidLevels. Time: O(L).
func indexLevels(levels []string) (map[string]int, error) {
	idx := make(map[string]int, len(levels))
	for i, lvl := range levels {
		if _, dup := idx[lvl]; dup {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevels, lvl)
		}
		idx[lvl] = i
	}

	return idx, nil
}
