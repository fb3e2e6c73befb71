// Package briltxt converts Bril programs between the human-editable
// text format and the structured representation used by the JSON
// interchange format, and resolves imports across modules.
//
// Example usage (text to structured):
//
//	source := `
//	main {
//	  v: int = const 4;
//	  print v;
//	}
//	`
//	program, err := briltxt.ParseProgram(source)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The other direction is PrintProgram, and ResolveImports merges a
// program's imported modules into a single function namespace:
//
//	text := briltxt.PrintProgram(program)
//	merged, err := briltxt.ResolveImports(program, resolve.NewFSLoader(nil, "."))
package briltxt

import (
	"github.com/cockroachdb/errors"

	"github.com/bril-lang/briltxt/bril"
	"github.com/bril-lang/briltxt/resolve"
	"github.com/bril-lang/briltxt/text"
)

// ParseProgram parses text-format source into a structured program.
//
// The pipeline is tokenize, parse to a concrete tree, then lower the
// tree to the structured representation. Malformed text is a
// *text.SyntaxError; a function name defined twice in the source is a
// *bril.DuplicateFunctionError.
func ParseProgram(source string) (*bril.Program, error) {
	file, err := text.Parse(source)
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}

	program, err := text.Lower(file)
	if err != nil {
		return nil, errors.Wrap(err, "lower")
	}

	return program, nil
}

// PrintProgram renders a structured program in the text format. The
// function header line carries only the name; argument lists and return
// types are not part of the text rendering (see text.Writer).
func PrintProgram(program *bril.Program) string {
	return text.Print(program)
}

// ResolveImports transitively loads, parses, and merges every module
// the program imports, producing a single program with no imports left.
//
// Missing modules are *resolve.ModuleLoadError; a loaded function name
// that is already defined is a *bril.DuplicateFunctionError.
func ResolveImports(program *bril.Program, loader resolve.Loader, opts ...resolve.Option) (*bril.Program, error) {
	return resolve.Resolve(program, loader, opts...)
}
