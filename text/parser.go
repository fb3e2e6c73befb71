package text

// Parser parses Bril text-format tokens into a concrete syntax tree.
//
// The grammar is small enough for single-token lookahead almost
// everywhere; classifying an instruction needs two tokens past the
// leading identifier.
type Parser struct {
	tokens  []Token
	current int
	source  string
}

// NewParser creates a new parser for the given tokens. The source is
// kept for error context.
func NewParser(tokens []Token, source string) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
		source:  source,
	}
}

// Parse tokenizes and parses source into its concrete parse tree.
func Parse(source string) (*File, error) {
	lexer := NewLexer(source)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, source).Parse()
}

// Parse parses the tokens and returns a File. The first malformed
// construct aborts the parse with a *SyntaxError.
func (p *Parser) Parse() (*File, error) {
	file := &File{}

	for p.check(TokenImport) {
		imp, err := p.importDecl()
		if err != nil {
			return nil, err
		}
		file.Imports = append(file.Imports, imp)
	}

	for !p.isAtEnd() {
		fn, err := p.function()
		if err != nil {
			return nil, err
		}
		file.Functions = append(file.Functions, fn)
	}

	return file, nil
}

// importDecl parses an "import name;" directive.
func (p *Parser) importDecl() (ImportNode, error) {
	start := p.peek()
	p.advance() // consume "import"

	name, err := p.expectIdent("module name")
	if err != nil {
		return ImportNode{}, err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return ImportNode{}, err
	}

	return ImportNode{
		Name: name.Lexeme,
		Span: Position{Line: start.Line, Column: start.Column},
	}, nil
}

// function parses a function definition:
//
//	name arg* "{" body "}"
//	name arg* ":" type "{" body "}"
func (p *Parser) function() (FuncNode, error) {
	name, err := p.expectIdent("function name")
	if err != nil {
		return FuncNode{}, err
	}

	fn := FuncNode{
		Name: name.Lexeme,
		Span: Position{Line: name.Line, Column: name.Column},
	}

	for {
		arg, ok, err := p.argument()
		if err != nil {
			return FuncNode{}, err
		}
		if !ok {
			break
		}
		fn.Args = append(fn.Args, arg)
	}

	if p.match(TokenColon) {
		typ, err := p.expectIdent("return type")
		if err != nil {
			return FuncNode{}, err
		}
		fn.ReturnType = typ.Lexeme
	}

	if err := p.expect(TokenLeftBrace); err != nil {
		return FuncNode{}, err
	}

	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		instr, err := p.instruction()
		if err != nil {
			return FuncNode{}, err
		}
		fn.Body = append(fn.Body, instr)
	}

	if err := p.expect(TokenRightBrace); err != nil {
		return FuncNode{}, err
	}

	return fn, nil
}

// argument parses one function argument if the next token starts one:
// a bare identifier, or "(" identifier ":" type ")".
func (p *Parser) argument() (ArgNode, bool, error) {
	switch {
	case p.checkIdent():
		name := p.advance()
		return ArgNode{
			Name: name.Lexeme,
			Span: Position{Line: name.Line, Column: name.Column},
		}, true, nil

	case p.check(TokenLeftParen):
		start := p.advance()
		name, err := p.expectIdent("argument name")
		if err != nil {
			return ArgNode{}, false, err
		}
		if err := p.expect(TokenColon); err != nil {
			return ArgNode{}, false, err
		}
		typ, err := p.expectIdent("argument type")
		if err != nil {
			return ArgNode{}, false, err
		}
		if err := p.expect(TokenRightParen); err != nil {
			return ArgNode{}, false, err
		}
		return ArgNode{
			Name: name.Lexeme,
			Type: typ.Lexeme,
			Span: Position{Line: start.Line, Column: start.Column},
		}, true, nil

	default:
		return ArgNode{}, false, nil
	}
}

// instruction parses one body entry. The four forms share leading
// tokens, so classification is an explicit ordered dispatch: constant
// assignment first (requires the const keyword and a literal), then
// value operation (requires ": type ="), then effect operation, then
// label. This order keeps an identifier named "const" parseable as an
// ordinary operation and a trailing-colon identifier from being read as
// a type-annotated assignment.
func (p *Parser) instruction() (InstrNode, error) {
	first, err := p.expectIdent("instruction")
	if err != nil {
		return nil, err
	}
	span := Position{Line: first.Line, Column: first.Column}

	// "ident :" opens either an assignment (": type = ...") or a label.
	if p.check(TokenColon) {
		if p.checkIdentAt(1) && p.checkAt(2, TokenEqual) {
			p.advance() // ":"
			typ := p.advance()
			p.advance() // "="
			return p.assignment(first, typ, span)
		}

		p.advance() // ":"
		return LabelNode{Name: first.Lexeme, Span: span}, nil
	}

	// Effect operation: "op ident* ;".
	args := p.identList()
	if err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return EffectNode{Op: first.Lexeme, Args: args, Span: span}, nil
}

// assignment parses the tail of "dest : type = ...": a constant when
// the const keyword is followed by a literal, otherwise a value
// operation. "= const;" is a value operation whose op is named const.
func (p *Parser) assignment(dest, typ Token, span Position) (InstrNode, error) {
	if p.check(TokenConst) && p.checkLiteralAt(1) {
		p.advance() // "const"
		lit := p.advance()
		if err := p.expect(TokenSemicolon); err != nil {
			return nil, err
		}
		return ConstNode{
			Dest: dest.Lexeme,
			Type: typ.Lexeme,
			Value: LitNode{
				Kind:  lit.Kind,
				Value: lit.Lexeme,
				Span:  Position{Line: lit.Line, Column: lit.Column},
			},
			Span: span,
		}, nil
	}

	op, err := p.expectIdent("operation")
	if err != nil {
		return nil, err
	}
	args := p.identList()
	if err := p.expect(TokenSemicolon); err != nil {
		return nil, err
	}
	return ValueNode{
		Dest: dest.Lexeme,
		Type: typ.Lexeme,
		Op:   op.Lexeme,
		Args: args,
		Span: span,
	}, nil
}

// identList collects consecutive identifier tokens in textual order.
func (p *Parser) identList() []string {
	var idents []string
	for p.checkIdent() {
		idents = append(idents, p.advance().Lexeme)
	}
	return idents
}

// Helper methods

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) Token {
	if p.current+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.current+offset]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkAt(offset int, kind TokenKind) bool {
	return p.peekAt(offset).Kind == kind
}

// checkIdent reports whether the next token can be read as an
// identifier. The import and const keywords are ordinary identifiers
// outside their grammatical positions.
func (p *Parser) checkIdent() bool {
	return p.checkIdentAt(0)
}

func (p *Parser) checkIdentAt(offset int) bool {
	switch p.peekAt(offset).Kind {
	case TokenIdent, TokenImport, TokenConst:
		return true
	}
	return false
}

func (p *Parser) checkLiteralAt(offset int) bool {
	switch p.peekAt(offset).Kind {
	case TokenInt, TokenBool:
		return true
	}
	return false
}

func (p *Parser) match(kind TokenKind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind TokenKind) error {
	if p.check(kind) {
		p.advance()
		return nil
	}
	return p.errorf("expected %s, got %s", kind, p.peek().Kind)
}

func (p *Parser) expectIdent(what string) (Token, error) {
	if p.checkIdent() {
		return p.advance(), nil
	}
	return Token{}, p.errorf("expected %s, got %s", what, p.peek().Kind)
}

func (p *Parser) errorf(format string, args ...any) *SyntaxError {
	tok := p.peek()
	return newSyntaxErrorf(
		Position{Line: tok.Line, Column: tok.Column},
		p.source, format, args...,
	)
}
