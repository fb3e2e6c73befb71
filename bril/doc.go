// Package bril defines the structured representation of Bril programs.
//
// A Program is a flat namespace of functions, each holding a sequence of
// instructions and labels. Instructions form a small tagged union:
//   - Const: assigns an integer or boolean literal to a destination
//   - ValueOp: computes a result from named arguments into a destination
//   - EffectOp: executed for its side effect, produces no result
//   - Label: a named position in the instruction sequence
//
// # Interchange format
//
// The types in this package marshal to and from the canonical JSON
// interchange format. Optional fields (a program's imports, a function's
// arguments and return type) are omitted entirely when absent rather
// than encoded as empty or null.
//
// # Translation pipeline
//
// The typical pipeline is:
//
//	Text → tokens → parse tree → Program → JSON
//	JSON → Program → Text
//
// Parsing and printing of the text format live in the text package;
// cross-module import resolution lives in the resolve package.
package bril
