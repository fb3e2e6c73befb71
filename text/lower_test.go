package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bril-lang/briltxt/bril"
)

func lower(t *testing.T, source string) *bril.Program {
	t.Helper()
	file, err := Parse(source)
	require.NoError(t, err)
	program, err := Lower(file)
	require.NoError(t, err)
	return program
}

func TestLowerInstructions(t *testing.T) {
	program := lower(t, `main {
  a: int = const 4;
  b: int = add a a;
  print b;
loop:
}`)

	require.Len(t, program.Functions, 1)
	assert.Equal(t, []bril.Instruction{
		bril.Const{Dest: "a", Type: "int", Value: bril.IntLiteral(4)},
		bril.ValueOp{Dest: "b", Type: "int", Op: "add", Args: []string{"a", "a"}},
		bril.EffectOp{Op: "print", Args: []string{"b"}},
		bril.Label{Name: "loop"},
	}, program.Functions[0].Instrs)
}

func TestLowerFunctionHeader(t *testing.T) {
	program := lower(t, "add (x: int) y: int { }")

	require.Len(t, program.Functions, 1)
	fn := program.Functions[0]
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []bril.Arg{{Name: "x", Type: "int"}, {Name: "y"}}, fn.Args)
	assert.Equal(t, "int", fn.Type)
	assert.Empty(t, fn.Instrs)
}

func TestLowerImports(t *testing.T) {
	program := lower(t, "import util;\nimport math;\nmain { }")
	assert.Equal(t, []string{"util", "math"}, program.Imports)

	program = lower(t, "main { }")
	assert.Nil(t, program.Imports)
}

func TestLowerLiterals(t *testing.T) {
	program := lower(t, `main {
  t: bool = const true;
  f: bool = const false;
  n: int = const -12;
}`)

	assert.Equal(t, []bril.Instruction{
		bril.Const{Dest: "t", Type: "bool", Value: bril.BoolLiteral(true)},
		bril.Const{Dest: "f", Type: "bool", Value: bril.BoolLiteral(false)},
		bril.Const{Dest: "n", Type: "int", Value: bril.IntLiteral(-12)},
	}, program.Functions[0].Instrs)
}

func TestLowerDuplicateFunctions(t *testing.T) {
	file, err := Parse("main { }\nhelper { }\nmain { }")
	require.NoError(t, err)

	program, err := Lower(file)
	require.Error(t, err)
	assert.Nil(t, program)

	var dupErr *bril.DuplicateFunctionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, []string{"main"}, dupErr.Names)
}

// Each duplicated name is reported once, in order of first occurrence.
func TestLowerDuplicateFunctionsMultiple(t *testing.T) {
	file, err := Parse("a { }\nb { }\na { }\nb { }\na { }")
	require.NoError(t, err)

	_, err = Lower(file)
	var dupErr *bril.DuplicateFunctionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, []string{"a", "b"}, dupErr.Names)
}
