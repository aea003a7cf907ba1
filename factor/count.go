// File: count.go
// Role: per-level tallies and distinct-value views of a Factor.
// Determinism:
//   - Count and Unique follow level order, never frequency order; repeated
//     calls on the same Factor yield identical results.

package factor

// Count tallies the observations of every level, in level order. Levels
// that occur zero times are included with N == 0; observations with no
// level accumulate in Count.Missing instead. A nil Factor counts as empty.
//
// Complexity: O(n + L).
func (f *Factor) Count() Count {
	if f == nil {
		return Count{Levels: []string{}, N: []int{}}
	}

	n := make([]int, len(f.levels))
	missing := 0
	for _, c := range f.codes {
		if c == Missing {
			missing++
			continue
		}
		n[c]++
	}

	return Count{Levels: cloneStrings(f.levels), N: n, Missing: missing}
}

// Unique returns the distinct labels actually present among the
// observations, ordered by their position in the level list — not by
// first appearance. Missing observations contribute nothing.
//
// Complexity: O(n + L).
func (f *Factor) Unique() []string {
	if f == nil {
		return []string{}
	}

	present := make([]bool, len(f.levels))
	for _, c := range f.codes {
		if c != Missing {
			present[c] = true
		}
	}

	out := make([]string, 0, len(f.levels))
	for i, lvl := range f.levels {
		if present[i] {
			out = append(out, lvl)
		}
	}

	return out
}

// UniqueByAppearance returns the distinct labels present among the
// observations in the order each first appears, left to right. This is
// the plain "unique values" view; contrast with Unique, which follows
// level order.
//
// Complexity: O(n).
func (f *Factor) UniqueByAppearance() []string {
	if f == nil {
		return []string{}
	}

	seen := make([]bool, len(f.levels))
	out := make([]string, 0, len(f.levels))
	for _, c := range f.codes {
		if c == Missing || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, f.levels[c])
	}

	return out
}
