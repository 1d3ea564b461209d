// File: cover.go
// Role: Cover, an unordered set of same-arity cubes, keyed by
// content so that equality and hashing never depend on insertion order
// or pointer identity.
package cube

import "sort"

// Cover is an unordered set of cubes sharing the same input arity. It is
// the in-memory representation of a gate's ON-set cover.
//
// Cover is a value-oriented collection: methods that add or remove
// cubes return a new Cover rather than mutating aliased state, so a
// caller holding one Cover is never surprised by another caller's edits.
type Cover struct {
	cubes map[string]Cube
}

// NewCover builds a Cover from the given cubes, deduplicating by content.
func NewCover(cubes ...Cube) Cover {
	c := Cover{cubes: make(map[string]Cube, len(cubes))}
	for _, cb := range cubes {
		if cb.Null {
			continue
		}
		c.cubes[cb.Key()] = cb
	}
	return c
}

// Len returns the number of distinct cubes in c.
func (c Cover) Len() int { return len(c.cubes) }

// Contains reports whether cb (by content) is a member of c.
func (c Cover) Contains(cb Cube) bool {
	_, ok := c.cubes[cb.Key()]
	return ok
}

// With returns a new Cover equal to c plus cb (a no-op if cb is already
// present or is the null cube).
func (c Cover) With(cb Cube) Cover {
	out := c.Clone()
	if !cb.Null {
		out.cubes[cb.Key()] = cb
	}
	return out
}

// Without returns a new Cover equal to c minus cb.
func (c Cover) Without(cb Cube) Cover {
	out := c.Clone()
	delete(out.cubes, cb.Key())
	return out
}

// Clone returns a Cover sharing no storage with c.
func (c Cover) Clone() Cover {
	out := Cover{cubes: make(map[string]Cube, len(c.cubes))}
	for k, v := range c.cubes {
		out.cubes[k] = v
	}
	return out
}

// Snapshot returns the member cubes as a slice, sorted lexicographically
// on their input-bit string, for reproducible iteration.
func (c Cover) Snapshot() []Cube {
	out := make([]Cube, 0, len(c.cubes))
	for _, cb := range c.cubes {
		out = append(out, cb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Minterms returns the union of minterms covered by every cube in c (the
// cover's ON-set).
func (c Cover) Minterms() MintermSet {
	out := make(MintermSet)
	for _, cb := range c.cubes {
		for m := range cb.Minterms() {
			out[m] = struct{}{}
		}
	}
	return out
}

// Cost sums the per-cube cost plus the cube-count bias: |cover| +
// Σ cost(cube). This is the definition the optimizer's branching step
// uses for tie-breaks.
func (c Cover) Cost() int {
	total := len(c.cubes)
	for _, cb := range c.cubes {
		total += cb.Cost()
	}
	return total
}

// Equal reports whether c and other contain exactly the same cubes by
// content, which is a stronger condition than equal ON-sets.
func (c Cover) Equal(other Cover) bool {
	if len(c.cubes) != len(other.cubes) {
		return false
	}
	for k := range c.cubes {
		if _, ok := other.cubes[k]; !ok {
			return false
		}
	}
	return true
}

// EquivalentONSet reports whether c and other cover the same minterms,
// regardless of how many or which cubes produce them.
func (c Cover) EquivalentONSet(other Cover) bool {
	a, b := c.Minterms(), other.Minterms()
	return a.SubsetOf(b) && b.SubsetOf(a)
}

// Union returns a new Cover containing every cube of c and other.
func (c Cover) Union(other Cover) Cover {
	out := c.Clone()
	for k, v := range other.cubes {
		out.cubes[k] = v
	}
	return out
}
