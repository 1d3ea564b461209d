// Package model holds the BLIF model container: the model name, its
// declared inputs and outputs, the combinational gates the optimizer
// operates on, and the latch/clock directives carried through verbatim.
//
// Model is intentionally a plain struct of slices, not a lock-guarded
// container: it is built once by the parser, optimized in place, and
// handed to the serializer, with no concurrent access to guard.
package model
