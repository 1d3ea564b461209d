// File: branch.go
// Role: dominance-pruned, recursive best-cost branch-and-bound over the
// non-essential primes: a deterministic pivot (the first cube of a
// sorted snapshot) drives an include/exclude recursion compared by cost.
package optimize

import "github.com/NigoroJr/bliftax/cube"

// dominanceReduce discards any cube a in options whose cost exceeds some
// other distinct cube b's, when b already covers everything of a that
// still needs covering. The test intersects a's minterms with need, not
// a's full minterm set: minterms of a already satisfied by the essential
// primes are not a's problem anymore.
func dominanceReduce(options cube.Cover, need cube.MintermSet) cube.Cover {
	snap := options.Snapshot()
	removed := make(map[string]bool, len(snap))
	for _, a := range snap {
		if removed[a.Key()] {
			continue
		}
		aNeeded := a.Minterms().Intersect(need)
		for _, b := range snap {
			if a.Key() == b.Key() || removed[b.Key()] {
				continue
			}
			if a.Cost() > b.Cost() && aNeeded.SubsetOf(b.Minterms()) {
				removed[a.Key()] = true
				break
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

// Branch runs the outer greedy-commit loop: for every option in a fixed
// snapshot, probe whether including it is cheaper
// than excluding it (branchHelper), and if so lock it in, shrinking
// both need and the live option set for subsequent probes.
func Branch(need cube.MintermSet, options cube.Cover) cube.Cover {
	chosen := cube.NewCover()
	for _, p := range options.Snapshot() {
		decision := branchHelper(need, options, p)
		if decision.Contains(p) {
			chosen = chosen.With(p)
			need = need.Minus(p.Minterms())
			options = options.Without(p)
		}
	}
	return chosen
}

// branchHelper recursively decides, for the current (need, options, p),
// whether excluding p from the cover ("without_p") beats including it
// ("with_p"). "Exclude" wins only on a strict cost decrease and only
// when it still covers need in full — ties favor "include".
func branchHelper(need cube.MintermSet, options cube.Cover, p cube.Cube) cube.Cover {
	live := filterIntersecting(options, need)
	if live.Len() == 0 {
		return cube.NewCover()
	}

	rest := live.Without(p)
	// An empty rest yields a zero-value pivot; that's safe because the
	// recursive call below receives options=rest=empty together with it,
	// and always short-circuits on live.Len()==0 before ever touching p.
	pivot, _ := firstOf(rest)

	withP := branchHelper(need.Minus(p.Minterms()), rest, pivot).With(p)
	withoutP := branchHelper(need, rest, pivot)

	if withoutP.Cost() < withP.Cost() && need.SubsetOf(withoutP.Minterms()) {
		return withoutP
	}
	return withP
}

// filterIntersecting returns the subset of options whose minterms
// overlap need at all; options with no overlap can never help.
func filterIntersecting(options cube.Cover, need cube.MintermSet) cube.Cover {
	out := cube.NewCover()
	for _, o := range options.Snapshot() {
		if o.Minterms().Intersects(need) {
			out = out.With(o)
		}
	}
	return out
}

// firstOf returns the lexicographically first cube of c in its canonical
// snapshot order, implementing a deterministic pivot choice. ok is false
// for an empty c.
func firstOf(c cube.Cover) (cube.Cube, bool) {
	snap := c.Snapshot()
	if len(snap) == 0 {
		return cube.Cube{}, false
	}
	return snap[0], true
}
