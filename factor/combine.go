// File: combine.go
// Role: merging Factors — pairwise Combine and batch Unify, both under the
// left-priority union rule: the left operand's levels keep their order and
// come first, unseen levels from the right are appended in the right's order.

package factor

// unionLevels merges b's levels into a copy of a under the left-priority
// rule. Inputs are assumed duplicate-free. Time: O(La + Lb).
func unionLevels(a, b []string) []string {
	out := cloneStrings(a)
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, lvl := range a {
		seen[lvl] = struct{}{}
	}
	for _, lvl := range b {
		if _, ok := seen[lvl]; ok {
			continue
		}
		seen[lvl] = struct{}{}
		out = append(out, lvl)
	}

	return out
}

// recode returns f's codes rewritten against the level list indexed by
// unionIdx. Every non-missing label of f must be present in unionIdx,
// which union construction guarantees. Time: O(n).
func recode(f *Factor, unionIdx map[string]int) []int {
	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			codes[i] = Missing
			continue
		}
		codes[i] = unionIdx[f.levels[c]]
	}

	return codes
}

// Combine concatenates two Factors onto the union of their level sets:
// a's levels first in a's order, then b's unseen levels in b's order. The
// result's observations are a's followed by b's, each remapped to the
// union indices; Missing observations stay Missing. The union rule is
// total, so the only possible error is a nil input (ErrNilFactor).
//
// Complexity: O(na + nb + La + Lb).
func Combine(a, b *Factor) (*Factor, error) {
	if a == nil || b == nil {
		return nil, ErrNilFactor
	}

	union := unionLevels(a.levels, b.levels)
	idx, err := indexLevels(union)
	if err != nil {
		// union of duplicate-free inputs is duplicate-free; unreachable.
		return nil, err
	}

	codes := make([]int, 0, len(a.codes)+len(b.codes))
	codes = append(codes, recode(a, idx)...)
	codes = append(codes, recode(b, idx)...)

	return &Factor{levels: union, codes: codes}, nil
}

// Unify recodes every Factor in fs against one shared level set: the
// left-to-right fold of the union rule over all inputs. Observations and
// their labels are untouched; only the level numbering is standardized,
// so all outputs carry identical level lists (handy before comparing or
// stacking columns). The output has the same length and order as fs; an
// empty input yields an empty, non-nil output.
//
// Returns ErrNilFactor if any element of fs is nil.
//
// Complexity: O(Σ ni + Σ Li).
func Unify(fs []*Factor) ([]*Factor, error) {
	shared := []string{}
	for _, f := range fs {
		if f == nil {
			return nil, ErrNilFactor
		}
		shared = unionLevels(shared, f.levels)
	}
	idx, err := indexLevels(shared)
	if err != nil {
		return nil, err
	}

	out := make([]*Factor, len(fs))
	for i, f := range fs {
		out[i] = &Factor{levels: cloneStrings(shared), codes: recode(f, idx)}
	}

	return out, nil
}
