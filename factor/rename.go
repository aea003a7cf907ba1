// File: rename.go
// Role: level-metadata transforms — replace label text, or reorder/subset
// the level list with codes remapped to follow their labels.
//
// RenameLevels and Relevel are easy to confuse: RenameLevels changes label
// TEXT only and never touches a code; Relevel changes label ORDER (and may
// drop levels) and rewrites every code so each observation keeps pointing
// at the same label.

package factor

import "fmt"

// RenameLevels returns a Factor whose level labels are replaced
// positionally by newLabels; codes are carried over untouched, so every
// observation keeps its position in the level order under the new text.
//
// Returns ErrNilFactor on a nil receiver, ErrLengthMismatch if
// len(newLabels) != NumLevels(), and ErrInvalidLevels if newLabels
// contains duplicates (the level list must stay distinct).
//
// Complexity: O(n + L).
func (f *Factor) RenameLevels(newLabels []string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}
	if len(newLabels) != len(f.levels) {
		return nil, fmt.Errorf("%w: got %d labels for %d levels",
			ErrLengthMismatch, len(newLabels), len(f.levels))
	}
	if _, err := indexLevels(newLabels); err != nil {
		return nil, err
	}

	return &Factor{levels: cloneStrings(newLabels), codes: cloneInts(f.codes)}, nil
}

// Relevel returns a Factor whose levels follow newOrder — a permutation,
// or a subset, of the current level list. Codes are remapped so that each
// observation still refers to the same label at its new position; an
// observation whose label was omitted from newOrder becomes Missing-coded.
//
// Returns ErrNilFactor on a nil receiver, ErrUnknownLevel if newOrder
// names a label absent from the current levels, and ErrInvalidLevels if
// newOrder repeats a label.
//
// Complexity: O(n + L).
func (f *Factor) Relevel(newOrder []string) (*Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	oldIdx, err := indexLevels(f.levels)
	if err != nil {
		// the receiver upholds the no-duplicates invariant; unreachable.
		return nil, err
	}

	// newPos[old] = position of level old in newOrder, or Missing if dropped.
	newPos := make([]int, len(f.levels))
	for i := range newPos {
		newPos[i] = Missing
	}
	seen := make(map[string]struct{}, len(newOrder))
	for i, lvl := range newOrder {
		if _, dup := seen[lvl]; dup {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLevels, lvl)
		}
		seen[lvl] = struct{}{}
		old, ok := oldIdx[lvl]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, lvl)
		}
		newPos[old] = i
	}

	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			codes[i] = Missing
			continue
		}
		codes[i] = newPos[c]
	}

	return &Factor{levels: cloneStrings(newOrder), codes: codes}, nil
}
