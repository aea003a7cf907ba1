// File: methods.go
// Role: read-only inspection of a Factor.
// Determinism:
//   - Accessors return defensive copies; a returned slice is never aliased
//     to internal state, so callers may mutate results freely.

package factor

import "strings"

// naLabel is the textual rendering of a Missing code in String output.
const naLabel = "NA"

// Len returns the number of observations.
func (f *Factor) Len() int {
	if f == nil {
		return 0
	}

	return len(f.codes)
}

// NumLevels returns the number of levels.
func (f *Factor) NumLevels() int {
	if f == nil {
		return 0
	}

	return len(f.levels)
}

// Levels returns a copy of the level list in level order.
func (f *Factor) Levels() []string {
	if f == nil {
		return []string{}
	}

	return cloneStrings(f.levels)
}

// Codes returns a copy of the per-observation code sequence. Each entry is
// a valid index into Levels() or Missing.
func (f *Factor) Codes() []int {
	if f == nil {
		return []int{}
	}

	return cloneInts(f.codes)
}

// Code returns the code of observation i. i must be in [0, Len()).
func (f *Factor) Code(i int) int {
	return f.codes[i]
}

// IsMissing reports whether observation i carries no level.
// i must be in [0, Len()).
func (f *Factor) IsMissing(i int) bool {
	return f.codes[i] == Missing
}

// Value returns the label of observation i and true, or ("", false) when
// the observation is Missing-coded. i must be in [0, Len()).
func (f *Factor) Value(i int) (string, bool) {
	c := f.codes[i]
	if c == Missing {
		return "", false
	}

	return f.levels[c], true
}

// Labels materializes the per-observation labels in observation order.
// Missing observations render as the empty string; use Value or IsMissing
// when "" is itself a level.
func (f *Factor) Labels() []string {
	if f == nil {
		return []string{}
	}

	out := make([]string, len(f.codes))
	for i, c := range f.codes {
		if c != Missing {
			out[i] = f.levels[c]
		}
	}

	return out
}

// Equal reports whether f and other have identical level lists and
// identical code sequences. Two nil Factors are equal; nil never equals a
// non-nil Factor (even an empty one).
func (f *Factor) Equal(other *Factor) bool {
	if f == nil || other == nil {
		return f == nil && other == nil
	}
	if len(f.levels) != len(other.levels) || len(f.codes) != len(other.codes) {
		return false
	}
	for i := range f.levels {
		if f.levels[i] != other.levels[i] {
			return false
		}
	}
	for i := range f.codes {
		if f.codes[i] != other.codes[i] {
			return false
		}
	}

	return true
}

// String renders the observations followed by the level list, in the
// spirit of a printed factor:
//
//	SI2 SI1 NA IF | levels: I1 SI2 SI1 VS2
//
// Intended for debugging and examples, not for parsing.
func (f *Factor) String() string {
	if f == nil {
		return "<nil factor>"
	}

	var b strings.Builder
	for i, c := range f.codes {
		if i > 0 {
			b.WriteByte(' ')
		}
		if c == Missing {
			b.WriteString(naLabel)
		} else {
			b.WriteString(f.levels[c])
		}
	}
	if len(f.codes) == 0 {
		b.WriteString("<empty>")
	}
	b.WriteString(" | levels:")
	for _, lvl := range f.levels {
		b.WriteByte(' ')
		b.WriteString(lvl)
	}

	return b.String()
}
