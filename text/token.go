// Package text implements the human-editable text format for Bril
// programs: tokenizing, parsing into a concrete syntax tree, lowering
// the tree to the structured representation, and pretty-printing the
// structured representation back to text.
package text

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota

	// Literals
	TokenIdent
	TokenInt
	TokenBool

	// Keywords. Both double as plain identifiers outside their
	// grammatical position, so the parser treats them as ident-like.
	TokenImport
	TokenConst

	// Punctuation
	TokenColon      // :
	TokenSemicolon  // ;
	TokenEqual      // =
	TokenLeftParen  // (
	TokenRightParen // )
	TokenLeftBrace  // {
	TokenRightBrace // }
)

// String returns the string representation of the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenIdent:
		return "Ident"
	case TokenInt:
		return "IntLiteral"
	case TokenBool:
		return "BoolLiteral"
	case TokenImport:
		return "import"
	case TokenConst:
		return "const"
	case TokenColon:
		return ":"
	case TokenSemicolon:
		return ";"
	case TokenEqual:
		return "="
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	default:
		return "Unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

// Position represents a position in source code.
type Position struct {
	Line   int
	Column int
}
