// File: reorder.go
// Role: deterministic level-order transforms. Every function returns a new
// Factor; the data-to-label mapping is always preserved — only the rank /
// display order of the levels changes.
//
// All transforms assemble their result through factor's public API:
// a reordered level list is applied with Relevel (a full permutation, so
// no observation is ever dropped to Missing here).

package reorder

import (
	"sort"

	"github.com/katalvlaran/lvlcat/factor"
)

// ByFrequency returns a Factor whose levels are reordered by occurrence
// count — descending when descending is true, ascending otherwise. Ties
// keep the levels' relative order from the input (stable), so repeated
// calls are deterministic. Codes are remapped to follow their labels.
//
// Returns ErrNilFactor on nil input.
//
// Complexity: O(n + L log L).
func ByFrequency(f *factor.Factor, descending bool) (*factor.Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	cnt := f.Count()
	order := make([]int, len(cnt.Levels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if descending {
			return cnt.N[order[a]] > cnt.N[order[b]]
		}

		return cnt.N[order[a]] < cnt.N[order[b]]
	})

	newOrder := make([]string, len(order))
	for i, j := range order {
		newOrder[i] = cnt.Levels[j]
	}

	return f.Relevel(newOrder)
}

// ByAppearance builds a Factor from raw whose level order is the order in
// which each distinct label first appears, left to right. Every raw value
// is a level, so no observation is Missing-coded.
//
// Complexity: O(n).
func ByAppearance(raw []string) *factor.Factor {
	seen := make(map[string]struct{}, len(raw))
	levels := make([]string, 0, len(raw))
	for _, v := range raw {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			levels = append(levels, v)
		}
	}

	f, err := factor.NewWithLevels(raw, levels)
	if err != nil {
		// levels are distinct by construction; reaching here is a bug.
		panic(err)
	}

	return f
}

// Reverse returns a Factor with the level order reversed; codes are
// remapped so each observation keeps its label. Reverse is an involution:
// Reverse(Reverse(f)) equals f.
//
// Returns ErrNilFactor on nil input.
//
// Complexity: O(n + L).
func Reverse(f *factor.Factor) (*factor.Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	levels := f.Levels()
	for i, j := 0, len(levels)-1; i < j; i, j = i+1, j-1 {
		levels[i], levels[j] = levels[j], levels[i]
	}

	return f.Relevel(levels)
}

// Shift returns a Factor with the level order rotated by n positions with
// wraparound: negative n rotates left by |n| (the first |n| levels move to
// the back), positive n rotates right by n. The data-to-label mapping is
// preserved; Shift(Shift(f, n), -n) restores the original order.
//
// Returns ErrNilFactor on nil input.
//
// Complexity: O(n + L).
func Shift(f *factor.Factor, n int) (*factor.Factor, error) {
	if f == nil {
		return nil, ErrNilFactor
	}

	levels := f.Levels()
	ln := len(levels)
	if ln == 0 {
		return f.Relevel(levels)
	}

	// normalize to a left rotation by k ∈ [0, ln)
	k := ((-n % ln) + ln) % ln
	rotated := make([]string, 0, ln)
	rotated = append(rotated, levels[k:]...)
	rotated = append(rotated, levels[:k]...)

	return f.Relevel(rotated)
}
