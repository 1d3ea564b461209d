// Package cube implements the ternary cube (product-term) algebra: cube
// construction, coverage, minterm enumeration, cost, and the Star (∗) and
// Sharp (#) operators.
//
// A Cube is a value type: two cubes compare equal by their input-bit
// sequence and output bit alone (labels never participate). Covers are
// unordered sets of cubes keyed by that same content, so a Cover built
// from two different construction orders is the same Cover.
//
// Star and Sharp both require equal input arity and reject operands that
// already carry Epsilon/Null bits; violating either is an implementation
// bug, reported as a panic carrying a *PreconditionError so callers can
// recover() in tests without losing the failure cause.
package cube
