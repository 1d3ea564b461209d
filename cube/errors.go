// File: errors.go
// Role: Sentinel errors + the precondition-violation panic type for the
// cube algebra. Precondition violations are bugs, not recoverable states —
// they abort the current operation.
package cube

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by fallible constructors (cube.New). These are
// ordinary validation failures on external input and are never panics.
var (
	// ErrLengthMismatch indicates the input-word length in a bit string
	// does not match the number of declared input labels.
	ErrLengthMismatch = errors.New("cube: input word length does not match label count")

	// ErrBadRow indicates a cube row string could not be split into an
	// input word and a single-byte output bit (or, for a constant gate, a
	// single output-bit token), or carries a byte outside {0, 1, -}.
	ErrBadRow = errors.New("cube: malformed cube row")
)

// Sentinel errors wrapped by PreconditionError. These are bugs in the
// caller, never recoverable — see precondition below.
var (
	// ErrArityMismatch indicates two cubes of unequal input arity were
	// combined by Star, Sharp, or Covers.
	ErrArityMismatch = errors.New("cube: arity mismatch")

	// ErrEpsilonOrNullOperand indicates an operand to Star or Sharp already
	// carries an Epsilon or Null bit.
	ErrEpsilonOrNullOperand = errors.New("cube: epsilon/null bit in operand")

	// ErrNullCube indicates Cost, Minterms, or Covers was invoked on a null
	// cube, which has no defined cost or minterm set.
	ErrNullCube = errors.New("cube: operation invalid on null cube")
)

// PreconditionError reports a violated algebra invariant that is always a
// caller bug. Op names the method that detected the violation; Err is one
// of the sentinels above and is reachable via errors.Is/errors.As through
// Unwrap.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cube: %s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// precondition panics with a *PreconditionError wrapping err, tagged with
// the operation name op. Used exclusively for invariant violations that
// are bugs rather than recoverable states.
func precondition(op string, err error) {
	panic(&PreconditionError{Op: op, Err: err})
}
