package bril

import "strconv"

// Program is one complete Bril unit: the names of the modules it imports
// (empty once imports have been resolved) and the functions it defines.
type Program struct {
	Imports   []string   `json:"imports,omitempty"`
	Functions []Function `json:"functions"`
}

// Function is a named sequence of instructions and labels. Args and Type
// (the return type) are optional.
type Function struct {
	Name   string        `json:"name"`
	Args   []Arg         `json:"args,omitempty"`
	Type   string        `json:"type,omitempty"`
	Instrs []Instruction `json:"instrs"`
}

// Arg is a named function parameter with an optional type annotation.
type Arg struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Instruction is one entry in a function body: a constant assignment, a
// value operation, an effect operation, or a label.
type Instruction interface {
	instrNode()
}

// Const assigns a literal value to a destination variable.
type Const struct {
	Dest  string
	Type  string
	Value Literal
}

// ValueOp computes a result from its arguments into Dest. Args are
// identifiers; their order is significant.
type ValueOp struct {
	Dest string
	Type string
	Op   string
	Args []string
}

// EffectOp is executed for its side effect and produces no result.
type EffectOp struct {
	Op   string
	Args []string
}

// Label is a named position in an instruction sequence, a jump target.
type Label struct {
	Name string
}

func (Const) instrNode()    {}
func (ValueOp) instrNode()  {}
func (EffectOp) instrNode() {}
func (Label) instrNode()    {}

// LiteralKind discriminates the value held by a Literal.
type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralBool
)

// Literal is a constant value: a signed integer or a boolean.
type Literal struct {
	Kind LiteralKind
	Int  int64
	Bool bool
}

// IntLiteral returns an integer Literal.
func IntLiteral(v int64) Literal {
	return Literal{Kind: LiteralInt, Int: v}
}

// BoolLiteral returns a boolean Literal.
func BoolLiteral(v bool) Literal {
	return Literal{Kind: LiteralBool, Bool: v}
}

// String renders the literal as it appears in the text format. Booleans
// are always lower case.
func (l Literal) String() string {
	if l.Kind == LiteralBool {
		return strconv.FormatBool(l.Bool)
	}
	return strconv.FormatInt(l.Int, 10)
}
