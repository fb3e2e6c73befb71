package text

import (
	"fmt"
	"strings"

	"github.com/bril-lang/briltxt/bril"
)

// Writer renders a structured program in the text format.
//
// The rendering of a function header is intentionally lossy: it carries
// only the function name, never the argument list or return type, even
// when the structured Function has them. Existing tooling around the
// format depends on that exact shape, so it is preserved rather than
// closed up; round-tripping through the printer keeps function bodies
// intact but drops header annotations.
type Writer struct {
	out strings.Builder
}

// Print renders program in the text format. It is a total function:
// any well-formed program prints without error, and printing the same
// program twice yields identical text.
func Print(program *bril.Program) string {
	var w Writer
	w.writeProgram(program)
	return w.String()
}

// String returns the text generated so far.
func (w *Writer) String() string {
	return w.out.String()
}

func (w *Writer) writeProgram(program *bril.Program) {
	for _, name := range program.Imports {
		w.writeLine("import %s;", name)
	}
	for i := range program.Functions {
		w.writeFunction(&program.Functions[i])
	}
}

func (w *Writer) writeFunction(fn *bril.Function) {
	w.writeLine("%s {", fn.Name)
	for _, instr := range fn.Instrs {
		w.writeInstruction(instr)
	}
	w.writeLine("}")
}

// writeInstruction writes one two-space-indented body line.
func (w *Writer) writeInstruction(instr bril.Instruction) {
	switch in := instr.(type) {
	case bril.Const:
		w.writeLine("  %s: %s = const %s;", in.Dest, in.Type, in.Value)
	case bril.ValueOp:
		w.writeLine("  %s: %s = %s;", in.Dest, in.Type, spaceJoin(in.Op, in.Args))
	case bril.EffectOp:
		w.writeLine("  %s;", spaceJoin(in.Op, in.Args))
	case bril.Label:
		w.writeLine("  %s:", in.Name)
	}
}

//nolint:goprintffuncname
func (w *Writer) writeLine(format string, args ...any) {
	if len(args) == 0 {
		w.out.WriteString(format)
	} else {
		fmt.Fprintf(&w.out, format, args...)
	}
	w.out.WriteByte('\n')
}

func spaceJoin(op string, args []string) string {
	if len(args) == 0 {
		return op
	}
	return op + " " + strings.Join(args, " ")
}
