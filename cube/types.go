// File: types.go
// Role: the Cube value type and its fallible constructors.
package cube

import (
	"strings"

	"github.com/NigoroJr/bliftax/bit"
)

// Cube is a product term: an ordered sequence of input values plus a
// single output value, or the distinguished null cube.
//
// Equality is by (Inputs, Output) content alone — see Equal. Labels are
// not carried on Cube itself; a Gate (package model) associates one
// label per input position across its whole Cover.
type Cube struct {
	Inputs []bit.Value
	Output bit.Value
	Null   bool
}

// NullCube returns the distinguished empty cube: no inputs, no output,
// Null set. It covers no minterms and its cost is undefined.
func NullCube() Cube {
	return Cube{Null: true}
}

// New constructs a Cube from a bit-string row: either "<bits> <obit>"
// (a space-separated input word and output bit), or a single token
// "<obit>" for a constant gate declared with zero inputs.
//
// inputLabels is used only for its length (arity); New does not retain
// labels on the returned Cube.
func New(inputLabels []string, bitString string) (Cube, error) {
	fields := strings.Fields(bitString)
	arity := len(inputLabels)

	switch {
	case arity == 0:
		// Constant gate: the row is a single output-bit token.
		if len(fields) != 1 {
			return Cube{}, ErrBadRow
		}
		ob, err := bit.ParseValue(fields[0][0])
		if err != nil || len(fields[0]) != 1 {
			return Cube{}, ErrBadRow
		}
		return Cube{Inputs: nil, Output: ob}, nil

	case len(fields) == 2:
		word, obitTok := fields[0], fields[1]
		if len(word) != arity {
			return Cube{}, ErrLengthMismatch
		}
		if len(obitTok) != 1 {
			return Cube{}, ErrBadRow
		}
		inputs := make([]bit.Value, arity)
		for i := 0; i < arity; i++ {
			v, err := bit.ParseValue(word[i])
			if err != nil {
				return Cube{}, ErrBadRow
			}
			inputs[i] = v
		}
		ob, err := bit.ParseValue(obitTok[0])
		if err != nil {
			return Cube{}, ErrBadRow
		}
		return Cube{Inputs: inputs, Output: ob}, nil

	default:
		return Cube{}, ErrBadRow
	}
}

// Arity returns the number of input positions, 0 for a null or constant
// cube.
func (c Cube) Arity() int { return len(c.Inputs) }

// IsNull reports whether c is the distinguished null cube.
func (c Cube) IsNull() bool { return c.Null }

// Equal reports whether c and other have identical input sequences and
// output bit. Two null cubes are always equal; a null and a non-null
// cube are never equal.
func (c Cube) Equal(other Cube) bool {
	if c.Null || other.Null {
		return c.Null == other.Null
	}
	if len(c.Inputs) != len(other.Inputs) || c.Output != other.Output {
		return false
	}
	for i, v := range c.Inputs {
		if other.Inputs[i] != v {
			return false
		}
	}
	return true
}

// Key returns a canonical string encoding of c suitable for use as a map
// key, implementing content-based hashing so cube sets can be backed by an
// ordinary map keyed by content rather than pointer identity. Two cubes
// are Equal iff their Keys are identical.
func (c Cube) Key() string {
	if c.Null {
		return "#"
	}
	var sb strings.Builder
	sb.Grow(len(c.Inputs) + 2)
	for _, v := range c.Inputs {
		sb.WriteByte(byte(v))
	}
	sb.WriteByte('|')
	sb.WriteByte(byte(c.Output))
	return sb.String()
}

// String renders c in the same "<bits> <obit>" shape BLIF rows use, or
// "#" for a null cube.
func (c Cube) String() string {
	if c.Null {
		return "#"
	}
	var sb strings.Builder
	for _, v := range c.Inputs {
		sb.WriteByte(byte(v))
	}
	if len(c.Inputs) > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteByte(byte(c.Output))
	return sb.String()
}

// dcCount returns the number of don't-care positions among c.Inputs.
func (c Cube) dcCount() int {
	n := 0
	for _, v := range c.Inputs {
		if v == bit.DontCare {
			n++
		}
	}
	return n
}

// Cost returns the literal count n − (#don't-cares): the per-cube cost.
// Cost must not be called on a null cube; doing so is a precondition
// violation.
func (c Cube) Cost() int {
	if c.Null {
		precondition("Cube.Cost", ErrNullCube)
	}
	return len(c.Inputs) - c.dcCount()
}

// Covers reports whether c covers other position-wise: for every input
// position, c's bit equals other's bit or c's bit is a don't-care. The
// output bit is not compared. Arities must match; a mismatch is a
// precondition violation.
func (c Cube) Covers(other Cube) bool {
	if c.Null || other.Null {
		precondition("Cube.Covers", ErrNullCube)
	}
	if len(c.Inputs) != len(other.Inputs) {
		precondition("Cube.Covers", ErrArityMismatch)
	}
	for i, v := range c.Inputs {
		if v != bit.DontCare && v != other.Inputs[i] {
			return false
		}
	}
	return true
}
