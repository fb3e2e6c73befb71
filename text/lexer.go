package text

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes Bril text-format source code.
type Lexer struct {
	source   string
	pos      int
	line     int
	column   int
	start    int
	startCol int
	tokens   []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source. Comments and whitespace
// are discarded. A rune that cannot start any token is a *SyntaxError.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.pos
		l.startCol = l.column
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenEOF,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '{':
		l.addToken(TokenLeftBrace)
	case '}':
		l.addToken(TokenRightBrace)
	case ':':
		l.addToken(TokenColon)
	case ';':
		l.addToken(TokenSemicolon)
	case '=':
		l.addToken(TokenEqual)

	case '#':
		// Line comment
		for l.peek() != '\n' && !l.isAtEnd() {
			l.advance()
		}

	// Whitespace
	case ' ', '\r', '\t':
		// Ignore whitespace
	case '\n':
		l.line++
		l.column = 1

	case '-', '+':
		// Sign is only valid as part of an integer literal.
		if !isDigit(l.peek()) {
			return l.errorToken("expected digit after sign")
		}
		l.number()

	default:
		switch {
		case isDigit(r):
			l.number()
		case isIdentStart(r):
			l.identifier()
		default:
			return l.errorTokenf("unexpected character %q", r)
		}
	}

	return nil
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}
	l.addToken(TokenInt)
}

func (l *Lexer) identifier() {
	for isIdentPart(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	l.addToken(lookupKeyword(text))
}

var keywords = map[string]TokenKind{
	"import": TokenImport,
	"const":  TokenConst,
	"true":   TokenBool,
	"false":  TokenBool,
}

// lookupKeyword matches case-sensitively: True and FALSE are plain
// identifiers, not boolean literals.
func lookupKeyword(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return TokenIdent
}

// addToken uses the column recorded when the token started: column math
// on l.pos-l.start would count bytes, not runes.
func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.line,
		Column: l.startCol,
	})
}

func (l *Lexer) errorToken(message string) *SyntaxError {
	return &SyntaxError{
		Message: message,
		Pos:     Position{Line: l.line, Column: l.startCol},
		Source:  l.source,
	}
}

func (l *Lexer) errorTokenf(format string, args ...any) *SyntaxError {
	return newSyntaxErrorf(
		Position{Line: l.line, Column: l.startCol},
		l.source, format, args...,
	)
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isIdentStart reports whether r can begin an identifier:
// a letter, "_", or "%".
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '%'
}

// isIdentPart reports whether r can continue an identifier:
// an identifier-start rune, a digit, or ".".
func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r) || r == '.'
}
