// File: minterms.go
// Role: minterm enumeration and the set operations the
// optimize package needs over minterm sets (union, intersection, subset).
package cube

import (
	"sort"

	"github.com/NigoroJr/bliftax/bit"
)

// Minterm is a fully specified input assignment. Bit ordering is
// big-endian: the leftmost input bit contributes the most-significant
// digit.
type Minterm uint64

// MintermSet is an unordered set of Minterm values.
type MintermSet map[Minterm]struct{}

// NewMintermSet builds a MintermSet from the given values.
func NewMintermSet(ms ...Minterm) MintermSet {
	s := make(MintermSet, len(ms))
	for _, m := range ms {
		s[m] = struct{}{}
	}
	return s
}

// Clone returns a copy of s that shares no storage with it.
func (s MintermSet) Clone() MintermSet {
	out := make(MintermSet, len(s))
	for m := range s {
		out[m] = struct{}{}
	}
	return out
}

// Union returns the set union of s and other as a new MintermSet.
func (s MintermSet) Union(other MintermSet) MintermSet {
	out := s.Clone()
	for m := range other {
		out[m] = struct{}{}
	}
	return out
}

// Intersect returns the set intersection of s and other as a new
// MintermSet.
func (s MintermSet) Intersect(other MintermSet) MintermSet {
	out := make(MintermSet)
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	for m := range small {
		if _, ok := big[m]; ok {
			out[m] = struct{}{}
		}
	}
	return out
}

// Minus returns s with every minterm of other removed, as a new
// MintermSet.
func (s MintermSet) Minus(other MintermSet) MintermSet {
	out := make(MintermSet, len(s))
	for m := range s {
		if _, ok := other[m]; !ok {
			out[m] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every minterm of s is also in other.
func (s MintermSet) SubsetOf(other MintermSet) bool {
	for m := range s {
		if _, ok := other[m]; !ok {
			return false
		}
	}
	return true
}

// Intersects reports whether s and other share at least one minterm.
func (s MintermSet) Intersects(other MintermSet) bool {
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	for m := range small {
		if _, ok := big[m]; ok {
			return true
		}
	}
	return false
}

// Sorted returns the minterms of s in ascending order, for deterministic
// display and testing.
func (s MintermSet) Sorted() []Minterm {
	out := make([]Minterm, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Minterms enumerates the minterms of c by expanding every don't-care
// position to both 0 and 1. A cube with k don't-cares
// yields 2^k minterms. Calling Minterms on a null cube is a
// precondition violation: a null cube covers no minterms by definition,
// and callers must check IsNull first rather than rely on an empty set.
func (c Cube) Minterms() MintermSet {
	if c.Null {
		precondition("Cube.Minterms", ErrNullCube)
	}
	n := len(c.Inputs)
	out := make(MintermSet)
	// dcPositions collects the indices that need expansion; fixed bits
	// contribute a single, constant digit to every minterm.
	var base Minterm
	dcPositions := make([]int, 0, n)
	for i, v := range c.Inputs {
		base <<= 1
		switch v {
		case bit.On:
			base |= 1
		case bit.Off:
			// digit stays 0
		case bit.DontCare:
			dcPositions = append(dcPositions, n-1-i)
		}
	}
	k := len(dcPositions)
	for mask := 0; mask < (1 << uint(k)); mask++ {
		m := base
		for j, pos := range dcPositions {
			if mask&(1<<uint(j)) != 0 {
				m |= 1 << uint(pos)
			}
		}
		out[m] = struct{}{}
	}
	return out
}
