// Package optimize implements the classical "star + sharp + branching"
// two-level minimizer: prime-implicant generation by iterated starring,
// essential-prime identification by cascaded sharp, dominance reduction
// over the remaining primes, and a recursive best-cost branch-and-bound
// search.
//
// Optimize is the only entry point most callers need. It is pure: no
// I/O, no global state, deterministic given a stable iteration order —
// every internal set is snapshotted and sorted before being iterated, so
// two calls on the same cover walk it in the same order.
//
// Optimize never returns an error. A malformed cover (mismatched arity
// between cubes, an internal cube carrying Epsilon/Null) is a
// precondition violation and panics with a *cube.PreconditionError, the
// same contract cube.Star/cube.Sharp already establish.
package optimize
