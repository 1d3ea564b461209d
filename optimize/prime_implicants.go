// File: prime_implicants.go
// Role: iterated star-closure with dominance cleanup.
package optimize

import "github.com/NigoroJr/bliftax/cube"

// PrimeImplicants computes the prime implicants of c: repeatedly star
// every pair of cubes from the previous round, fold any non-null result
// into the working set, then discard any cube strictly covered by
// another distinct cube in the set. The process is a fixed point:
// starring a cube with itself or with a cube it already covers produces
// nothing new, and dominance cleanup keeps the working set bounded by
// 3^n.
func PrimeImplicants(c cube.Cover) cube.Cover {
	s := c
	for {
		prev := s.Snapshot() // stable snapshot for deterministic pairing
		for i := 0; i < len(prev); i++ {
			for j := i + 1; j < len(prev); j++ {
				r := cube.Star(prev[i], prev[j])
				if !r.IsNull() {
					s = s.With(r)
				}
			}
		}
		s = removeDominated(s)

		if s.Equal(cube.NewCover(prev...)) {
			return s
		}
	}
}

// removeDominated strips every cube in s that is covered by some other,
// distinct cube also in s. Cube.Covers is transitive, so a single pass
// over all ordered pairs of the input
// snapshot is sufficient: no cube needs re-checking after another is
// marked removed.
func removeDominated(s cube.Cover) cube.Cover {
	snap := s.Snapshot()
	removed := make(map[string]bool, len(snap))
	for _, a := range snap {
		for _, b := range snap {
			if a.Key() == b.Key() || removed[b.Key()] {
				continue
			}
			if a.Covers(b) {
				removed[b.Key()] = true
			}
		}
	}

	out := cube.NewCover()
	for _, c := range snap {
		if !removed[c.Key()] {
			out = out.With(c)
		}
	}
	return out
}
