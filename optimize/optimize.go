// File: optimize.go
// Role: the public entry point tying prime-implicant generation,
// essential-prime extraction, and branch-and-bound search together.
package optimize

import "github.com/NigoroJr/bliftax/cube"

// Optimize computes a minimum-cost cover of c's ON-set using the
// star+sharp+branching method: generate prime implicants, pull out the
// essential ones, reduce the remaining primes by dominance, then settle
// the rest with a cost-minimizing branch-and-bound search over what the
// essentials don't already cover.
//
// Optimize is pure and deterministic: the same cover always yields the
// same result. Its output ON-set always equals c's; it never returns an
// error, and panics only on a malformed input cover.
func Optimize(c cube.Cover) cube.Cover {
	primes := PrimeImplicants(c)
	essentials := EssentialPrimes(primes)

	nonessential := primes
	for _, e := range essentials.Snapshot() {
		nonessential = nonessential.Without(e)
	}

	need := c.Minterms().Minus(essentials.Minterms())
	nonessential = dominanceReduce(nonessential, need)

	chosen := Branch(need, nonessential)
	return essentials.Union(chosen)
}
