package optimize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NigoroJr/bliftax/cube"
	"github.com/NigoroJr/bliftax/optimize"
)

func row(t *testing.T, arity int, word string) cube.Cube {
	t.Helper()
	labels := make([]string, arity)
	for i := range labels {
		labels[i] = "x"
	}
	c, err := cube.New(labels, word+" 1")
	require.NoError(t, err)
	return c
}

func coverOf(t *testing.T, arity int, words ...string) cube.Cover {
	t.Helper()
	cubes := make([]cube.Cube, 0, len(words))
	for _, w := range words {
		cubes = append(cubes, row(t, arity, w))
	}
	return cube.NewCover(cubes...)
}

// TestOptimize_SmallCoverMinimizes checks {010, 110, 111} minimizes to
// {-10, 11-}.
func TestOptimize_SmallCoverMinimizes(t *testing.T) {
	in := coverOf(t, 3, "010", "110", "111")
	got := optimize.Optimize(in)

	want := coverOf(t, 3, "-10", "11-")
	assert.True(t, got.Equal(want), "got %v want %v", dump(got), dump(want))
	assert.True(t, got.EquivalentONSet(in), "ON-set must be preserved")
}

// TestOptimize_XORLikeCoverIsIrreducible checks the XOR-like cover
// {000, 011, 110, 101} has no reducible cover and minimizes to itself.
func TestOptimize_XORLikeCoverIsIrreducible(t *testing.T) {
	in := coverOf(t, 3, "000", "011", "110", "101")
	got := optimize.Optimize(in)

	assert.True(t, got.Equal(in), "got %v want %v", dump(got), dump(in))
	for _, c := range got.Snapshot() {
		assert.Equal(t, 3, c.Cost(), "every minterm of an XOR-like cover is its own essential prime")
	}
}

// TestOptimize_PreservesONSet checks that optimizing never changes a
// cover's ON-set, across a handful of covers.
func TestOptimize_PreservesONSet(t *testing.T) {
	cases := [][]string{
		{"000", "001", "010", "011"},
		{"0--", "1-1"},
		{"00", "01", "10", "11"},
	}
	for _, words := range cases {
		arity := len(words[0])
		in := coverOf(t, arity, words...)
		got := optimize.Optimize(in)
		assert.True(t, got.EquivalentONSet(in), "ON-set changed for %v -> %v", words, dump(got))
	}
}

// TestOptimize_Deterministic checks that repeated calls on the same
// input return the same cover.
func TestOptimize_Deterministic(t *testing.T) {
	in := coverOf(t, 3, "010", "110", "111")
	a := optimize.Optimize(in)
	b := optimize.Optimize(in)
	assert.True(t, a.Equal(b))
}

// TestOptimize_NeverIncreasesCost sanity-checks that optimize never does
// worse than the original (unminimized) cover.
func TestOptimize_NeverIncreasesCost(t *testing.T) {
	in := coverOf(t, 4, "0111", "0011", "1011", "1111")
	got := optimize.Optimize(in)
	assert.LessOrEqual(t, got.Cost(), in.Cost())
}

func dump(c cube.Cover) []string {
	snap := c.Snapshot()
	out := make([]string, len(snap))
	for i, cb := range snap {
		out[i] = cb.String()
	}
	return out
}
