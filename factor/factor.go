package factor

import (
	"fmt"
	"sort"
)

// New builds a Factor from raw, inferring the level list as the sorted
// distinct set of raw values. Ordering is byte-wise lexicographic
// ascending (Go string comparison), independent of locale.
//
// Every raw value is a level by construction, so no observation is
// Missing-coded and New cannot fail.
//
// Complexity: O(n log n) for n = len(raw).
func New(raw []string) *Factor {
	seen := make(map[string]struct{}, len(raw))
	levels := make([]string, 0, len(raw))
	for _, v := range raw {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			levels = append(levels, v)
		}
	}
	sort.Strings(levels)

	f, err := NewWithLevels(raw, levels)
	if err != nil {
		// levels are distinct by construction; reaching here is a bug.
		panic(err)
	}

	return f
}

// NewWithLevels builds a Factor from raw against an explicit level list.
// The level order is taken verbatim from levels; raw values absent from
// levels become Missing-coded observations, not errors. Levels that never
// occur in raw are kept (they count as zero, see Count).
//
// Returns ErrInvalidLevels if levels contains duplicate entries.
//
// Complexity: O(n + L) for n observations and L levels.
func NewWithLevels(raw, levels []string) (*Factor, error) {
	idx, err := indexLevels(levels)
	if err != nil {
		return nil, err
	}

	codes := make([]int, len(raw))
	for i, v := range raw {
		if j, ok := idx[v]; ok {
			codes[i] = j
		} else {
			codes[i] = Missing
		}
	}

	return &Factor{levels: cloneStrings(levels), codes: codes}, nil
}

// FromCodes rebuilds a Factor from a level list and a pre-computed code
// sequence, validating both invariants. It is the inverse of
// (Levels(), Codes()) and the hook used by transform packages to assemble
// results through the public API.
//
// Returns ErrInvalidLevels on duplicate levels, ErrCodeRange if any code
// is neither Missing nor a valid level index.
//
// Complexity: O(n + L).
func FromCodes(levels []string, codes []int) (*Factor, error) {
	if _, err := indexLevels(levels); err != nil {
		return nil, err
	}
	for i, c := range codes {
		if c != Missing && (c < 0 || c >= len(levels)) {
			return nil, fmt.Errorf("%w: code %d at position %d, want Missing or [0,%d)",
				ErrCodeRange, c, i, len(levels))
		}
	}

	return &Factor{levels: cloneStrings(levels), codes: cloneInts(codes)}, nil
}
