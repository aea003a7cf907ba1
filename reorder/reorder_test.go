// Package reorder_test exercises the deterministic level-order transforms
// via the public API. Focus: mapping preservation (an observation never
// changes its label), wraparound arithmetic, and stable tie-breaking.
package reorder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcat/factor"
	"github.com/katalvlaran/lvlcat/reorder"
)

// TestByFrequency_Descending verifies descending count order with stable
// ties by original level position.
func TestByFrequency_Descending(t *testing.T) {
	// counts: a=1, b=3, c=1, d=2 → descending [b d a c] (a before c: tie, original order)
	f, err := factor.NewWithLevels(
		[]string{"b", "d", "b", "a", "c", "b", "d"},
		[]string{"a", "b", "c", "d"},
	)
	require.NoError(t, err)

	byFreq, err := reorder.ByFrequency(f, true)
	require.NoError(t, err)

	require.Equal(t, []string{"b", "d", "a", "c"}, byFreq.Levels())
	require.Equal(t, f.Labels(), byFreq.Labels())
}

// TestByFrequency_Ascending verifies the ascending variant, again with
// stable ties.
func TestByFrequency_Ascending(t *testing.T) {
	f, err := factor.NewWithLevels(
		[]string{"b", "d", "b", "a", "c", "b", "d"},
		[]string{"a", "b", "c", "d"},
	)
	require.NoError(t, err)

	byFreq, err := reorder.ByFrequency(f, false)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c", "d", "b"}, byFreq.Levels())
}

// TestByFrequency_ZeroCountLevels checks unused levels sink to the back in
// descending order without being dropped.
func TestByFrequency_ZeroCountLevels(t *testing.T) {
	f, err := factor.NewWithLevels([]string{"y"}, []string{"x", "y", "z"})
	require.NoError(t, err)

	byFreq, err := reorder.ByFrequency(f, true)
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x", "z"}, byFreq.Levels())
	require.Equal(t, 3, byFreq.NumLevels())
}

// TestByAppearance reproduces the first-appearance ordering example.
func TestByAppearance(t *testing.T) {
	f := reorder.ByAppearance([]string{"Germany", "USA", "Germany", "France"})

	require.Equal(t, []string{"Germany", "USA", "France"}, f.Levels())
	require.Equal(t, []int{0, 1, 0, 2}, f.Codes())
}

// TestReverse_Involution verifies Reverse twice restores the original.
func TestReverse_Involution(t *testing.T) {
	f := factor.New([]string{"b", "a", "c", "a"})

	rev, err := reorder.Reverse(f)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "b", "a"}, rev.Levels())
	require.Equal(t, f.Labels(), rev.Labels())

	back, err := reorder.Reverse(rev)
	require.NoError(t, err)
	require.True(t, f.Equal(back))
}

// TestShift_Wraparound reproduces the one-left rotation example and checks
// the sign convention.
func TestShift_Wraparound(t *testing.T) {
	f, err := factor.NewWithLevels(nil, []string{"A", "B", "C", "D"})
	require.NoError(t, err)

	cases := []struct {
		name string
		n    int
		want []string
	}{
		{"LeftOne", -1, []string{"B", "C", "D", "A"}},
		{"RightOne", 1, []string{"D", "A", "B", "C"}},
		{"LeftWrap", -5, []string{"B", "C", "D", "A"}},
		{"RightWrap", 6, []string{"C", "D", "A", "B"}},
		{"Zero", 0, []string{"A", "B", "C", "D"}},
		{"FullTurn", 4, []string{"A", "B", "C", "D"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shifted, err := reorder.Shift(f, tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, shifted.Levels())
		})
	}
}

// TestShift_RoundTrip verifies Shift(n) then Shift(-n) is the identity,
// codes included.
func TestShift_RoundTrip(t *testing.T) {
	f := factor.New([]string{"c", "a", "d", "b", "a"})

	for _, n := range []int{-3, -1, 0, 1, 2, 7} {
		shifted, err := reorder.Shift(f, n)
		require.NoError(t, err)
		back, err := reorder.Shift(shifted, -n)
		require.NoError(t, err)
		require.True(t, f.Equal(back), "round trip failed for n=%d", n)
	}
}

// TestShift_EmptyLevels checks the degenerate no-level case.
func TestShift_EmptyLevels(t *testing.T) {
	f := factor.New(nil)

	shifted, err := reorder.Shift(f, 3)
	require.NoError(t, err)
	require.True(t, f.Equal(shifted))
}

// TestNilInputs verifies every transform rejects a nil Factor.
func TestNilInputs(t *testing.T) {
	if _, err := reorder.ByFrequency(nil, true); !errors.Is(err, reorder.ErrNilFactor) {
		t.Errorf("ByFrequency(nil) error = %v; want ErrNilFactor", err)
	}
	if _, err := reorder.Reverse(nil); !errors.Is(err, reorder.ErrNilFactor) {
		t.Errorf("Reverse(nil) error = %v; want ErrNilFactor", err)
	}
	if _, err := reorder.Shift(nil, 1); !errors.Is(err, reorder.ErrNilFactor) {
		t.Errorf("Shift(nil) error = %v; want ErrNilFactor", err)
	}
	if _, err := reorder.Shuffle(nil, nil); !errors.Is(err, reorder.ErrNilFactor) {
		t.Errorf("Shuffle(nil) error = %v; want ErrNilFactor", err)
	}
}

// TestTransforms_DoNotMutateInput verifies value semantics: deriving a
// reordered Factor leaves the source untouched.
func TestTransforms_DoNotMutateInput(t *testing.T) {
	f := factor.New([]string{"b", "a", "c"})
	levels := f.Levels()
	codes := f.Codes()

	_, err := reorder.Reverse(f)
	require.NoError(t, err)
	_, err = reorder.Shift(f, 2)
	require.NoError(t, err)
	_, err = reorder.ByFrequency(f, true)
	require.NoError(t, err)
	_, err = reorder.Shuffle(f, nil)
	require.NoError(t, err)

	require.Equal(t, levels, f.Levels())
	require.Equal(t, codes, f.Codes())
}
