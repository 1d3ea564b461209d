package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NigoroJr/bliftax/cube"
)

func mustCover(t *testing.T, rows ...string) cube.Cover {
	t.Helper()
	cubes := make([]cube.Cube, 0, len(rows))
	for _, r := range rows {
		n := len(r) - 2 // "<bits> <obit>"
		labels := make([]string, n)
		for i := range labels {
			labels[i] = "x"
		}
		c, err := cube.New(labels, r)
		if err != nil {
			t.Fatalf("mustCover: %v", err)
		}
		cubes = append(cubes, c)
	}
	return cube.NewCover(cubes...)
}

func TestCover_DedupesByContent(t *testing.T) {
	c := mustCover(t, "01 1", "01 1", "10 1")
	assert.Equal(t, 2, c.Len())
}

func TestCover_Equal(t *testing.T) {
	a := mustCover(t, "01 1", "10 1")
	b := mustCover(t, "10 1", "01 1")
	assert.True(t, a.Equal(b), "Cover equality must not depend on insertion order")
}

func TestCover_EquivalentONSet(t *testing.T) {
	// {01, 10} and {0-, 1-} differ as cube sets, but if both cover the
	// same minterms they must be ON-set equivalent. Here they're not
	// (0- and 1- each add an extra minterm), so assert inequivalence.
	a := mustCover(t, "01 1", "10 1")
	b := mustCover(t, "0- 1", "1- 1")
	assert.False(t, a.EquivalentONSet(b))
	assert.True(t, a.Equal(a))
}

func TestCover_Cost(t *testing.T) {
	// Two cubes of cost 1 each ("0-" and "-1" over arity 2) plus the
	// |cover| bias of 2 gives a total cost of 4.
	c := mustCover(t, "0- 1", "-1 1")
	assert.Equal(t, 4, c.Cost())
}

func TestCover_SnapshotIsSorted(t *testing.T) {
	c := mustCover(t, "10 1", "01 1", "00 1")
	snap := c.Snapshot()
	for i := 1; i < len(snap); i++ {
		assert.LessOrEqual(t, snap[i-1].Key(), snap[i].Key())
	}
}
