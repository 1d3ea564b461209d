package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NigoroJr/bliftax/cube"
)

// mustCube builds a Cube from an input word + output bit token, failing
// the test on malformed fixtures (test-only convenience; production code always
// checks the error from cube.New).
func mustCube(t *testing.T, word, obit string) cube.Cube {
	t.Helper()
	labels := make([]string, len(word))
	for i := range labels {
		labels[i] = "x"
	}
	c, err := cube.New(labels, word+" "+obit)
	require.NoError(t, err)
	return c
}

// TestStar_SingleDisagreement covers the case where a single position
// disagrees and is promoted to don't-care.
func TestStar_SingleDisagreement(t *testing.T) {
	a := mustCube(t, "0111", "1")
	b := mustCube(t, "0011", "1")
	got := cube.Star(a, b)
	assert.False(t, got.Null)
	assert.Equal(t, "0-11", got.String()[:4])
}

// TestStar_MultiDisagreementIsNull checks that disagreeing on more than
// one position yields the null cube.
func TestStar_MultiDisagreementIsNull(t *testing.T) {
	a := mustCube(t, "0111", "1")
	b := mustCube(t, "1011", "1")
	got := cube.Star(a, b)
	assert.True(t, got.IsNull())
}

func TestStar_Commutative(t *testing.T) {
	a := mustCube(t, "0111", "1")
	b := mustCube(t, "0011", "1")
	assert.True(t, cube.Star(a, b).Equal(cube.Star(b, a)))
}

func TestStar_Idempotent(t *testing.T) {
	a := mustCube(t, "01-0", "1")
	assert.True(t, cube.Star(a, a).Equal(a))
}

func TestStar_ArityMismatchPanics(t *testing.T) {
	a := mustCube(t, "01", "1")
	b := mustCube(t, "011", "1")
	assert.Panics(t, func() { cube.Star(a, b) })
}

// TestSharp_MultiResult checks a multi-axis subtraction that yields
// several result cubes.
func TestSharp_MultiResult(t *testing.T) {
	a := mustCube(t, "-1-0-", "1")
	b := mustCube(t, "110-1", "1")
	got := cube.Sharp(a, b)
	require.Len(t, got, 3)

	want := map[string]bool{"01-0-": true, "-110-": true, "-1-00": true}
	for _, c := range got {
		assert.True(t, want[c.String()[:5]], "unexpected result cube %q", c.String())
		delete(want, c.String()[:5])
	}
	assert.Empty(t, want, "not every expected cube was produced")
}

func TestSharp_FullySubtractedIsEmpty(t *testing.T) {
	a := mustCube(t, "10", "1")
	b := mustCube(t, "1-", "1")
	assert.Empty(t, cube.Sharp(a, b))
}

func TestSharp_DisjointReturnsA(t *testing.T) {
	a := mustCube(t, "0", "1")
	b := mustCube(t, "1", "1")
	got := cube.Sharp(a, b)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equal(a))
}

// TestSharp_Exactness checks that minterms(a)\minterms(b) equals the
// union of minterms(c) over non-null c in a#b, for a handful of
// representative cube pairs.
func TestSharp_Exactness(t *testing.T) {
	pairs := [][2]cube.Cube{
		{mustCube(t, "-1-0-", "1"), mustCube(t, "110-1", "1")},
		{mustCube(t, "0111", "1"), mustCube(t, "0011", "1")},
		{mustCube(t, "10", "1"), mustCube(t, "1-", "1")},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		want := a.Minterms().Minus(b.Minterms())

		got := make(map[cube.Minterm]struct{})
		for _, c := range cube.Sharp(a, b) {
			for m := range c.Minterms() {
				got[m] = struct{}{}
			}
		}
		assert.Equal(t, len(want), len(got), "a=%s b=%s", a, b)
		for m := range want {
			_, ok := got[m]
			assert.True(t, ok, "missing minterm %d for a=%s b=%s", m, a, b)
		}
	}
}

// TestMinterms checks minterm expansion over a cube with multiple
// don't-care positions.
func TestMinterms(t *testing.T) {
	c := mustCube(t, "0--01", "1")
	got := c.Minterms().Sorted()
	want := []cube.Minterm{1, 5, 9, 13}
	require.Equal(t, len(want), len(got))
	for i, m := range want {
		assert.Equal(t, m, got[i])
	}
}

// TestCost_MatchesBoundary checks that cost(c) + #DC == arity.
func TestCost_MatchesBoundary(t *testing.T) {
	c := mustCube(t, "0--01", "1")
	dc := len(c.Minterms().Sorted()) // 2^(#DC); back out #DC below
	want := 0
	for n := dc; n > 1; n >>= 1 {
		want++
	}
	assert.Equal(t, 3, c.Cost())
	assert.Equal(t, c.Arity(), c.Cost()+want)
}
