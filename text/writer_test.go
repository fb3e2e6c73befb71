package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bril-lang/briltxt/bril"
)

func TestPrintInstructionForms(t *testing.T) {
	program := &bril.Program{
		Functions: []bril.Function{{
			Name: "main",
			Instrs: []bril.Instruction{
				bril.Const{Dest: "v", Type: "int", Value: bril.IntLiteral(4)},
				bril.Const{Dest: "b", Type: "bool", Value: bril.BoolLiteral(true)},
				bril.ValueOp{Dest: "s", Type: "int", Op: "add", Args: []string{"v", "v"}},
				bril.ValueOp{Dest: "z", Type: "int", Op: "nop"},
				bril.EffectOp{Op: "print", Args: []string{"s"}},
				bril.EffectOp{Op: "ret"},
				bril.Label{Name: "done"},
			},
		}},
	}

	expected := `main {
  v: int = const 4;
  b: bool = const true;
  s: int = add v v;
  z: int = nop;
  print s;
  ret;
  done:
}
`
	assert.Equal(t, expected, Print(program))
}

// The function header carries only the name: argument lists and return
// types are dropped by the text rendering.
func TestPrintLossyHeader(t *testing.T) {
	program := &bril.Program{
		Functions: []bril.Function{{
			Name: "add",
			Args: []bril.Arg{{Name: "x", Type: "int"}, {Name: "y", Type: "int"}},
			Type: "int",
		}},
	}

	assert.Equal(t, "add {\n}\n", Print(program))
}

func TestPrintImports(t *testing.T) {
	program := &bril.Program{
		Imports:   []string{"util", "math"},
		Functions: []bril.Function{{Name: "main"}},
	}

	assert.Equal(t, "import util;\nimport math;\nmain {\n}\n", Print(program))
}

func TestPrintIdempotent(t *testing.T) {
	program := lower(t, `main {
  v: int = const 4;
  print v;
}`)

	first := Print(program)
	second := Print(program)
	assert.Equal(t, first, second)
}

// Programs without header annotations survive a full text -> structured
// -> text -> structured round trip.
func TestRoundTrip(t *testing.T) {
	source := `import util;
main {
  a: int = const 4;
  b: bool = const false;
  c: int = mul a a;
  br.target c here there;
here:
  print c;
there:
}
second {
  ret;
}
`
	program := lower(t, source)
	printed := Print(program)
	reparsed := lower(t, printed)

	assert.Equal(t, program, reparsed)
	assert.Equal(t, printed, Print(reparsed))
}

// Round-tripping keeps function bodies intact even when the lossy
// header drops args and return types.
func TestRoundTripBodiesWithLossyHeader(t *testing.T) {
	program := lower(t, `add (x: int) (y: int): int {
  s: int = add x y;
  ret s;
}`)

	reparsed := lower(t, Print(program))
	require.Len(t, reparsed.Functions, 1)

	assert.Empty(t, reparsed.Functions[0].Args)
	assert.Empty(t, reparsed.Functions[0].Type)
	assert.Equal(t, program.Functions[0].Instrs, reparsed.Functions[0].Instrs)
}
