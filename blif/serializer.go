// File: serializer.go
// Role: the BLIF pretty-printer, the mirror image of parser.go.
package blif

import (
	"io"
	"strings"

	"github.com/NigoroJr/bliftax/model"
)

// Serialize renders m as BLIF text in a fixed order:
// .model, .inputs, .outputs, one .names block per gate (directive, then
// one row per cube, cubes ordered by their canonical snapshot so output
// is reproducible), .latch lines, .clock lines, then .end. Every line
// terminates with \n.
func Serialize(m *model.Model) string {
	var sb strings.Builder

	sb.WriteString(".model ")
	sb.WriteString(m.Name)
	sb.WriteByte('\n')

	sb.WriteString(".inputs")
	for _, in := range m.Inputs {
		sb.WriteByte(' ')
		sb.WriteString(in)
	}
	sb.WriteByte('\n')

	sb.WriteString(".outputs")
	for _, out := range m.Outputs {
		sb.WriteByte(' ')
		sb.WriteString(out)
	}
	sb.WriteByte('\n')

	for _, g := range m.Gates {
		sb.WriteString(".names")
		for _, in := range g.Inputs {
			sb.WriteByte(' ')
			sb.WriteString(in)
		}
		sb.WriteByte(' ')
		sb.WriteString(g.Output)
		sb.WriteByte('\n')

		for _, c := range g.Cover.Snapshot() {
			sb.WriteString(c.String())
			sb.WriteByte('\n')
		}
	}

	for _, l := range m.Latches {
		sb.WriteString(".latch")
		for _, tok := range l {
			sb.WriteByte(' ')
			sb.WriteString(tok)
		}
		sb.WriteByte('\n')
	}

	for _, cl := range m.Clocks {
		sb.WriteString(".clock")
		for _, tok := range cl {
			sb.WriteByte(' ')
			sb.WriteString(tok)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(".end\n")
	return sb.String()
}

// Write serializes m to w.
func Write(w io.Writer, m *model.Model) error {
	_, err := io.WriteString(w, Serialize(m))
	return err
}
