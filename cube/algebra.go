// File: algebra.go
// Role: the Star (∗) and Sharp (#) cube operators, defined position-wise
// over fixed per-position transition tables.
package cube

import "github.com/NigoroJr/bliftax/bit"

// starTable and sharpTable implement the per-position transition rules.
// Rows are indexed by the LHS bit, columns by the RHS bit, in
// {Off, On, DontCare} order.
var starTable = [3][3]bit.Value{
	// Off           On             DontCare
	{bit.Off, bit.Null, bit.Off},
	{bit.Null, bit.On, bit.On},
	{bit.Off, bit.On, bit.DontCare},
}

var sharpTable = [3][3]bit.Value{
	{bit.Epsilon, bit.Null, bit.Epsilon},
	{bit.Null, bit.Epsilon, bit.Epsilon},
	{bit.On, bit.Off, bit.Epsilon},
}

// idx maps a user-visible Value to its row/column index in the tables
// above; only Off/On/DontCare are legal here.
func idx(v bit.Value) (int, bool) {
	switch v {
	case bit.Off:
		return 0, true
	case bit.On:
		return 1, true
	case bit.DontCare:
		return 2, true
	default:
		return 0, false
	}
}

// checkOperands validates that a and b share arity and carry only
// user-visible bits, panicking otherwise.
func checkOperands(op string, a, b Cube) {
	if a.Null || b.Null {
		precondition(op, ErrNullCube)
	}
	if len(a.Inputs) != len(b.Inputs) {
		precondition(op, ErrArityMismatch)
	}
	for _, v := range a.Inputs {
		if !v.IsUserVisible() {
			precondition(op, ErrEpsilonOrNullOperand)
		}
	}
	for _, v := range b.Inputs {
		if !v.IsUserVisible() {
			precondition(op, ErrEpsilonOrNullOperand)
		}
	}
}

// Star computes the star product a ∗ b: the largest common
// subcube of a and b. If the two cubes disagree at more than one
// position, the result is the null cube (they share no such subcube);
// a single disagreement is promoted to don't-care. Star is commutative
// and idempotent on valid cubes.
func Star(a, b Cube) Cube {
	checkOperands("Star", a, b)

	n := len(a.Inputs)
	result := make([]bit.Value, n)
	nullCount := 0
	nullPos := -1
	for i := 0; i < n; i++ {
		ai, _ := idx(a.Inputs[i])
		bi, _ := idx(b.Inputs[i])
		r := starTable[ai][bi]
		if r == bit.Null {
			nullCount++
			nullPos = i
		}
		result[i] = r
	}
	if nullCount > 1 {
		return NullCube()
	}
	if nullCount == 1 {
		result[nullPos] = bit.DontCare
	}
	return Cube{Inputs: result, Output: bit.On}
}

// Sharp computes the sharp difference a # b: the set of cubes covering
// exactly the minterms of a not covered by b. The returned slice never
// contains a null cube: "B covers A entirely" returns an empty slice
// rather than a cube with no minterms, and "B disagrees with A along some
// axis" (B contributes nothing there) returns a single-element slice
// holding a, unchanged.
func Sharp(a, b Cube) []Cube {
	checkOperands("Sharp", a, b)

	n := len(a.Inputs)
	result := make([]bit.Value, n)
	allEpsilon := true
	for i := 0; i < n; i++ {
		ai, _ := idx(a.Inputs[i])
		bi, _ := idx(b.Inputs[i])
		r := sharpTable[ai][bi]
		if r == bit.Null {
			// B is fixed where A disagrees: B cannot subtract anything
			// from A along this axis.
			return []Cube{a}
		}
		if r != bit.Epsilon {
			allEpsilon = false
		}
		result[i] = r
	}
	if allEpsilon {
		// B covers A entirely: A \ B is empty.
		return nil
	}

	// Case 4: for each axis where A is don't-care and B is fixed, emit a
	// cube equal to A but with that axis replaced by B's complement.
	var out []Cube
	for i := 0; i < n; i++ {
		if a.Inputs[i] != bit.DontCare || b.Inputs[i] == bit.DontCare {
			continue
		}
		c := make([]bit.Value, n)
		copy(c, a.Inputs)
		c[i] = b.Inputs[i].Complement()
		out = append(out, Cube{Inputs: c, Output: a.Output})
	}
	return out
}

// SharpAll computes the sharp difference of a against every cube in bs in
// sequence, flattening and dropping empty results at each step — the
// "cascaded sharp" used by essential-prime identification.
func SharpAll(a Cube, bs []Cube) []Cube {
	remaining := []Cube{a}
	for _, b := range bs {
		var next []Cube
		for _, r := range remaining {
			next = append(next, Sharp(r, b)...)
		}
		remaining = next
		if len(remaining) == 0 {
			return nil
		}
	}
	return remaining
}
