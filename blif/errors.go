// File: errors.go
// Role: sentinel errors and the line-tagged ParseError. A parse failure
// aborts parsing and is reported with the offending line's text.
package blif

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed BLIF input. Callers branch on these with
// errors.Is; ParseError.Unwrap exposes them.
var (
	// ErrUnknownDirective indicates a line beginning with '.' that is not
	// one of .model/.inputs/.outputs/.names/.latch/.clock/.end.
	ErrUnknownDirective = errors.New("blif: unknown directive")

	// ErrUnexpectedRow indicates a cube row appeared outside any .names
	// block.
	ErrUnexpectedRow = errors.New("blif: cube row outside .names block")

	// ErrMissingModel indicates .inputs/.outputs/.names/.end appeared
	// before any .model directive.
	ErrMissingModel = errors.New("blif: directive before .model")

	// ErrMissingEnd indicates input ended without a terminating .end.
	ErrMissingEnd = errors.New("blif: missing .end")

	// ErrBadDirectiveArgs indicates a directive was given a payload it
	// cannot parse (e.g. .names with no output label).
	ErrBadDirectiveArgs = errors.New("blif: malformed directive arguments")
)

// ParseError reports a failure at a specific physical line of BLIF
// source, carrying the offending line text.
type ParseError struct {
	Line int    // 1-based physical line where the offending logical line starts; 0 for empty input
	Text string // the logical line text being processed
	Err  error  // the underlying sentinel
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("blif: line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }
