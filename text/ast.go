package text

// File is the concrete parse tree of one textual unit: import
// directives followed by function definitions.
type File struct {
	Imports   []ImportNode
	Functions []FuncNode
}

// ImportNode is an "import name;" directive.
type ImportNode struct {
	Name string
	Span Position
}

// FuncNode is a function definition.
type FuncNode struct {
	Name       string
	Args       []ArgNode
	ReturnType string // empty when the function declares no return type
	Body       []InstrNode
	Span       Position
}

// ArgNode is a function argument, either bare ("x") or typed
// ("(x: int)").
type ArgNode struct {
	Name string
	Type string // empty for bare arguments
	Span Position
}

// InstrNode is one body entry in the concrete tree.
type InstrNode interface {
	Pos() Position
	instrNode()
}

// ConstNode is a constant assignment: "dest: type = const literal;".
type ConstNode struct {
	Dest  string
	Type  string
	Value LitNode
	Span  Position
}

func (n ConstNode) Pos() Position { return n.Span }
func (ConstNode) instrNode()      {}

// ValueNode is a value operation: "dest: type = op args...;".
type ValueNode struct {
	Dest string
	Type string
	Op   string
	Args []string
	Span Position
}

func (n ValueNode) Pos() Position { return n.Span }
func (ValueNode) instrNode()      {}

// EffectNode is an effect operation: "op args...;".
type EffectNode struct {
	Op   string
	Args []string
	Span Position
}

func (n EffectNode) Pos() Position { return n.Span }
func (EffectNode) instrNode()      {}

// LabelNode is a label: "name:".
type LabelNode struct {
	Name string
	Span Position
}

func (n LabelNode) Pos() Position { return n.Span }
func (LabelNode) instrNode()      {}

// LitNode is a literal token in the tree. The lexeme is kept verbatim;
// conversion to a native value happens during lowering.
type LitNode struct {
	Kind  TokenKind // TokenInt or TokenBool
	Value string
	Span  Position
}
