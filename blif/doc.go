// Package blif implements a line-oriented BLIF subset: a preprocessor
// (comment stripping, backslash continuation), a parser that dispatches
// logical lines to directive handlers and builds a model.Model, and a
// serializer that writes one back out.
//
// Parsing is a straightforward line-by-line scan — no grammar, no
// lookahead. BLIF's directive-per-line shape doesn't need one.
package blif
