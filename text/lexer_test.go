package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenKinds(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestLexerPunctuation(t *testing.T) {
	tokens, err := NewLexer("( ) { } : ; =").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace,
		TokenColon, TokenSemicolon, TokenEqual, TokenEOF,
	}, tokenKinds(tokens))
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []string{
		"x",
		"_tmp",
		"%reg1",
		"a.b.c",
		"v0",
		"long_name.with%parts",
	}

	for _, input := range tests {
		tokens, err := NewLexer(input).Tokenize()
		require.NoError(t, err, "input %q", input)
		require.Len(t, tokens, 2, "input %q", input)
		assert.Equal(t, TokenIdent, tokens[0].Kind, "input %q", input)
		assert.Equal(t, input, tokens[0].Lexeme, "input %q", input)
	}
}

func TestLexerKeywords(t *testing.T) {
	tokens, err := NewLexer("import const true false").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenImport, TokenConst, TokenBool, TokenBool, TokenEOF,
	}, tokenKinds(tokens))
}

func TestLexerBooleanCaseSensitive(t *testing.T) {
	// Only the exact lexemes true/false are boolean literals.
	tokens, err := NewLexer("True FALSE truex").Tokenize()
	require.NoError(t, err)

	for _, tok := range tokens[:3] {
		assert.Equal(t, TokenIdent, tok.Kind, "lexeme %q", tok.Lexeme)
	}
}

func TestLexerIntegers(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"0", "0"},
		{"42", "42"},
		{"-5", "-5"},
		{"+7", "+7"},
		{"-0", "-0"},
	}

	for _, tt := range tests {
		tokens, err := NewLexer(tt.input).Tokenize()
		require.NoError(t, err, "input %q", tt.input)
		require.Len(t, tokens, 2, "input %q", tt.input)
		assert.Equal(t, TokenInt, tokens[0].Kind, "input %q", tt.input)
		assert.Equal(t, tt.lexeme, tokens[0].Lexeme, "input %q", tt.input)
	}
}

func TestLexerCommentsAndLines(t *testing.T) {
	tokens, err := NewLexer("a # trailing comment\n# full line\nb").Tokenize()
	require.NoError(t, err)

	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, "b", tokens[1].Lexeme)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestLexerInstructionTokens(t *testing.T) {
	tokens, err := NewLexer("v: int = const 4;").Tokenize()
	require.NoError(t, err)

	assert.Equal(t, []TokenKind{
		TokenIdent, TokenColon, TokenIdent, TokenEqual,
		TokenConst, TokenInt, TokenSemicolon, TokenEOF,
	}, tokenKinds(tokens))
}

// Identifiers admit any unicode letter, so columns must count runes
// rather than bytes.
func TestLexerMultibyteColumns(t *testing.T) {
	// "π" and "µ" are one column each but two bytes each.
	tokens, err := NewLexer("π: int = const 4;\nµvar b").Tokenize()
	require.NoError(t, err)

	require.Equal(t, "π", tokens[0].Lexeme)
	assert.Equal(t, 1, tokens[0].Column)
	require.Equal(t, "int", tokens[2].Lexeme)
	assert.Equal(t, 4, tokens[2].Column)
	require.Equal(t, "4", tokens[5].Lexeme)
	assert.Equal(t, 16, tokens[5].Column)

	require.Equal(t, "µvar", tokens[7].Lexeme)
	assert.Equal(t, 1, tokens[7].Column)
	require.Equal(t, "b", tokens[8].Lexeme)
	assert.Equal(t, 6, tokens[8].Column)

	_, err = NewLexer("a €").Tokenize()
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, 3, syntaxErr.Pos.Column)
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		input string
		line  int
	}{
		{"$", 1},
		{"a @ b", 1},
		{"main {\n  !bad\n}", 2},
		{"- x", 1}, // sign must be followed by a digit
	}

	for _, tt := range tests {
		_, err := NewLexer(tt.input).Tokenize()
		require.Error(t, err, "input %q", tt.input)

		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "input %q", tt.input)
		assert.Equal(t, tt.line, syntaxErr.Pos.Line, "input %q", tt.input)
	}
}
