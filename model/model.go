// File: model.go
// Role: Gate and Model, the concrete containers a parsed BLIF file fills
// in and a serializer reads back out.
package model

import "github.com/NigoroJr/bliftax/cube"

// Gate is one combinational logic gate: its input labels (in positional
// order, matching Cover's cube arity), its single output label, and its
// cover. It is created by the parser, mutated only by the optimizer
// (which replaces Cover wholesale), and serialized by the printer.
type Gate struct {
	Inputs []string
	Output string
	Cover  cube.Cover
}

// Model is the top-level BLIF container: model name, declared inputs and
// outputs, the gates defined by .names blocks, and the latch/clock
// directive payloads, stored verbatim as token lists rather than
// interpreted.
type Model struct {
	Name    string
	Inputs  []string
	Outputs []string
	Gates   []*Gate
	Latches [][]string
	Clocks  [][]string
}

// New returns an empty Model named name.
func New(name string) *Model {
	return &Model{Name: name}
}

// AddGate appends g to the model's gate list.
func (m *Model) AddGate(g *Gate) {
	m.Gates = append(m.Gates, g)
}

// GateByOutput returns the first gate whose Output matches label, and
// whether one was found. BLIF allows at most one .names block per output
// in a well-formed model, so "first" is also "only" in practice.
func (m *Model) GateByOutput(label string) (*Gate, bool) {
	for _, g := range m.Gates {
		if g.Output == label {
			return g, true
		}
	}
	return nil, false
}
