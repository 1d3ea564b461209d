// File: parser.go
// Role: dispatches preprocessed logical lines to directive handlers and
// builds a model.Model.
package blif

import (
	"io"
	"strings"

	"github.com/NigoroJr/bliftax/cube"
	"github.com/NigoroJr/bliftax/model"
)

// Parse reads BLIF text from r and returns the Model it describes, or a
// *ParseError on the first malformed or out-of-order directive.
func Parse(r io.Reader) (*model.Model, error) {
	lines, err := preprocess(r)
	if err != nil {
		return nil, err
	}

	var (
		m       *model.Model
		current *model.Gate
		sawEnd  bool
	)

	for _, ll := range lines {
		if sawEnd {
			// .end terminates parsing; anything after it is ignored.
			break
		}
		fields := strings.Fields(ll.text)
		directive := fields[0]

		if !strings.HasPrefix(directive, ".") {
			// Cube row: must be inside an open .names block.
			if current == nil {
				return nil, parseErr(ll, ErrUnexpectedRow)
			}
			c, err := cube.New(current.Inputs, ll.text)
			if err != nil {
				return nil, parseErr(ll, err)
			}
			current.Cover = current.Cover.With(c)
			continue
		}

		switch directive {
		case ".model":
			if len(fields) != 2 {
				return nil, parseErr(ll, ErrBadDirectiveArgs)
			}
			m = model.New(fields[1])
			current = nil

		case ".inputs":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			m.Inputs = append(m.Inputs, fields[1:]...)
			current = nil

		case ".outputs":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			m.Outputs = append(m.Outputs, fields[1:]...)
			current = nil

		case ".names":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			if len(fields) < 2 {
				return nil, parseErr(ll, ErrBadDirectiveArgs)
			}
			rest := fields[1:]
			g := &model.Gate{
				Inputs: append([]string(nil), rest[:len(rest)-1]...),
				Output: rest[len(rest)-1],
			}
			m.AddGate(g)
			current = g

		case ".latch":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			m.Latches = append(m.Latches, append([]string(nil), fields[1:]...))
			current = nil

		case ".clock":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			m.Clocks = append(m.Clocks, append([]string(nil), fields[1:]...))
			current = nil

		case ".end":
			if err := requireModel(m, ll); err != nil {
				return nil, err
			}
			sawEnd = true
			current = nil

		default:
			return nil, parseErr(ll, ErrUnknownDirective)
		}
	}

	if m == nil {
		return nil, &ParseError{Line: 0, Text: "", Err: ErrMissingModel}
	}
	if !sawEnd {
		return nil, &ParseError{Line: lines[len(lines)-1].line, Text: "", Err: ErrMissingEnd}
	}
	return m, nil
}

// requireModel reports ErrMissingModel if .model has not yet been seen.
func requireModel(m *model.Model, ll logicalLine) error {
	if m == nil {
		return parseErr(ll, ErrMissingModel)
	}
	return nil
}

func parseErr(ll logicalLine, err error) error {
	return &ParseError{Line: ll.line, Text: ll.text, Err: err}
}
