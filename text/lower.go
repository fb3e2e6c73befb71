package text

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/bril-lang/briltxt/bril"
)

// Lower transforms a concrete parse tree into the structured program.
// Each node kind maps to exactly one structured variant. The result is
// rejected with *bril.DuplicateFunctionError when the same function name
// is defined more than once within the file; collisions across imported
// modules are the resolve package's concern.
func Lower(file *File) (*bril.Program, error) {
	program := &bril.Program{
		Functions: make([]bril.Function, 0, len(file.Functions)),
	}

	for _, imp := range file.Imports {
		program.Imports = append(program.Imports, imp.Name)
	}

	for i := range file.Functions {
		fn, err := lowerFunction(&file.Functions[i])
		if err != nil {
			return nil, err
		}
		program.Functions = append(program.Functions, fn)
	}

	if dups := bril.DuplicateNames(program.Functions); len(dups) > 0 {
		return nil, &bril.DuplicateFunctionError{Names: dups}
	}

	return program, nil
}

func lowerFunction(node *FuncNode) (bril.Function, error) {
	fn := bril.Function{
		Name:   node.Name,
		Type:   node.ReturnType,
		Instrs: make([]bril.Instruction, 0, len(node.Body)),
	}

	for _, arg := range node.Args {
		fn.Args = append(fn.Args, bril.Arg{Name: arg.Name, Type: arg.Type})
	}

	for _, instr := range node.Body {
		lowered, err := lowerInstruction(instr)
		if err != nil {
			return bril.Function{}, errors.Wrapf(err, "function %s", node.Name)
		}
		fn.Instrs = append(fn.Instrs, lowered)
	}

	return fn, nil
}

func lowerInstruction(node InstrNode) (bril.Instruction, error) {
	switch n := node.(type) {
	case ConstNode:
		value, err := lowerLiteral(n.Value)
		if err != nil {
			return nil, err
		}
		return bril.Const{Dest: n.Dest, Type: n.Type, Value: value}, nil

	case ValueNode:
		return bril.ValueOp{Dest: n.Dest, Type: n.Type, Op: n.Op, Args: argList(n.Args)}, nil

	case EffectNode:
		return bril.EffectOp{Op: n.Op, Args: argList(n.Args)}, nil

	case LabelNode:
		return bril.Label{Name: n.Name}, nil

	default:
		return nil, errors.Newf("unknown instruction node %T", node)
	}
}

func lowerLiteral(node LitNode) (bril.Literal, error) {
	if node.Kind == TokenBool {
		return bril.BoolLiteral(node.Value == "true"), nil
	}

	v, err := strconv.ParseInt(node.Value, 10, 64)
	if err != nil {
		return bril.Literal{}, errors.Wrapf(err, "integer literal %q", node.Value)
	}
	return bril.IntLiteral(v), nil
}

func argList(args []string) []string {
	if args == nil {
		return []string{}
	}
	return args
}
