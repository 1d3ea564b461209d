// File: essential.go
// Role: essential-prime identification by cascaded sharp.
package optimize

import "github.com/NigoroJr/bliftax/cube"

// EssentialPrimes returns the subset of primes that are essential: a
// prime p is essential iff subtracting every other prime from it (the
// "cascaded sharp") leaves a non-empty remainder — equivalently, p
// covers at least one minterm no other prime covers.
func EssentialPrimes(primes cube.Cover) cube.Cover {
	snap := primes.Snapshot()
	out := cube.NewCover()

	for _, p := range snap {
		others := make([]cube.Cube, 0, len(snap)-1)
		for _, q := range snap {
			if q.Key() != p.Key() {
				others = append(others, q)
			}
		}
		if len(cube.SharpAll(p, others)) > 0 {
			out = out.With(p)
		}
	}
	return out
}
