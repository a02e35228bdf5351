/*
File    : bogus-go/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juhofriman/bogus-go/token"
)

// TestConsumeToken represents a table-driven case for ConsumeTokens:
// Input source text and the sequence of token kinds/literals expected.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []token.Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `let`,
			ExpectedTokens: []token.Token{
				token.New(token.LET, "let", 0, 0),
			},
		},
		{
			Input: `1.12`,
			ExpectedTokens: []token.Token{
				token.New(token.FLOAT, "1.12", 0, 0),
			},
		},
		{
			Input: `""`,
			ExpectedTokens: []token.Token{
				token.New(token.STRING, "", 0, 0),
			},
		},
		{
			Input: `"foo"`,
			ExpectedTokens: []token.Token{
				token.New(token.STRING, "foo", 0, 0),
			},
		},
		{
			Input: `==`,
			ExpectedTokens: []token.Token{
				token.New(token.EQUALS, "==", 0, 0),
			},
		},
		{
			Input: `->`,
			ExpectedTokens: []token.Token{
				token.New(token.ARROW, "->", 0, 0),
			},
		},
		{
			Input: `"\""`,
			ExpectedTokens: []token.Token{
				token.New(token.STRING, `"`, 0, 0),
			},
		},
		{
			Input: `"\\"`,
			ExpectedTokens: []token.Token{
				token.New(token.STRING, `\`, 0, 0),
			},
		},
		{
			Input: `(1 + 2) * 2`,
			ExpectedTokens: []token.Token{
				token.New(token.LEFT_PARENS, "(", 0, 0),
				token.New(token.INTEGER, "1", 0, 0),
				token.New(token.PLUS, "+", 0, 0),
				token.New(token.INTEGER, "2", 0, 0),
				token.New(token.RIGHT_PARENS, ")", 0, 0),
				token.New(token.MULTIPLICATION, "*", 0, 0),
				token.New(token.INTEGER, "2", 0, 0),
			},
		},
		{
			Input: `let a = 1; a = 5; a`,
			ExpectedTokens: []token.Token{
				token.New(token.LET, "let", 0, 0),
				token.New(token.IDENTIFIER, "a", 0, 0),
				token.New(token.ASSIGN, "=", 0, 0),
				token.New(token.INTEGER, "1", 0, 0),
				token.New(token.SEMICOLON, ";", 0, 0),
				token.New(token.IDENTIFIER, "a", 0, 0),
				token.New(token.ASSIGN, "=", 0, 0),
				token.New(token.INTEGER, "5", 0, 0),
				token.New(token.SEMICOLON, ";", 0, 0),
				token.New(token.IDENTIFIER, "a", 0, 0),
			},
		},
		{
			Input: `fun a(x, y) -> x + y;`,
			ExpectedTokens: []token.Token{
				token.New(token.FUN, "fun", 0, 0),
				token.New(token.IDENTIFIER, "a", 0, 0),
				token.New(token.LEFT_PARENS, "(", 0, 0),
				token.New(token.IDENTIFIER, "x", 0, 0),
				token.New(token.COMMA, ",", 0, 0),
				token.New(token.IDENTIFIER, "y", 0, 0),
				token.New(token.RIGHT_PARENS, ")", 0, 0),
				token.New(token.ARROW, "->", 0, 0),
				token.New(token.IDENTIFIER, "x", 0, 0),
				token.New(token.PLUS, "+", 0, 0),
				token.New(token.IDENTIFIER, "y", 0, 0),
				token.New(token.SEMICOLON, ";", 0, 0),
			},
		},
		{
			Input: `true false null const if return`,
			ExpectedTokens: []token.Token{
				token.New(token.TRUE, "true", 0, 0),
				token.New(token.FALSE, "false", 0, 0),
				token.New(token.NULL, "null", 0, 0),
				token.New(token.CONST, "const", 0, 0),
				token.New(token.IF, "if", 0, 0),
				token.New(token.RETURN, "return", 0, 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			lex := NewLexer(tt.Input)
			got, err := lex.ConsumeTokens()
			require.NoError(t, err)
			require.Equal(t, len(tt.ExpectedTokens), len(got))
			for i, want := range tt.ExpectedTokens {
				assert.Equal(t, want.Type, got[i].Type, "token %d kind", i)
				assert.Equal(t, want.Literal, got[i].Literal, "token %d literal", i)
			}
		})
	}
}

func TestLexer_Location(t *testing.T) {
	src := "let foo = 1;\nlet bar = \"bar value with whitespace\";"
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)

	var secondLet, trailingSemicolon *token.Token
	count := 0
	for i := range tokens {
		if tokens[i].Type == token.LET {
			count++
			if count == 2 {
				secondLet = &tokens[i]
			}
		}
	}
	trailingSemicolon = &tokens[len(tokens)-1]

	require.NotNil(t, secondLet)
	assert.Equal(t, 2, secondLet.Line)
	assert.Equal(t, 0, secondLet.Column)

	assert.Equal(t, token.SEMICOLON, trailingSemicolon.Type)
	assert.Equal(t, 2, trailingSemicolon.Line)
	assert.Equal(t, 37, trailingSemicolon.Column)
}

func TestLexer_Errors(t *testing.T) {
	t.Run("identifier can't start with digit", func(t *testing.T) {
		lex := NewLexer("1234var")
		_, err := lex.ConsumeTokens()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "identifier can't start with digit")
	})

	t.Run("unterminated string", func(t *testing.T) {
		lex := NewLexer(`"hello`)
		_, err := lex.ConsumeTokens()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "string is not terminated")
	})

	t.Run("unterminated string not masked by trailing comment", func(t *testing.T) {
		lex := NewLexer("\"hello // not a comment")
		_, err := lex.ConsumeTokens()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "string is not terminated")
	})
}

func TestLexer_Comments(t *testing.T) {
	t.Run("comment only yields no tokens", func(t *testing.T) {
		lex := NewLexer("// this is just a comment")
		got, err := lex.ConsumeTokens()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("trailing comment does not affect statement tokens", func(t *testing.T) {
		lex := NewLexer("let a = 5; // hi")
		got, err := lex.ConsumeTokens()
		require.NoError(t, err)
		require.Len(t, got, 5)
		assert.Equal(t, token.LET, got[0].Type)
		assert.Equal(t, token.IDENTIFIER, got[1].Type)
		assert.Equal(t, token.ASSIGN, got[2].Type)
		assert.Equal(t, token.INTEGER, got[3].Type)
		assert.Equal(t, token.SEMICOLON, got[4].Type)
	})
}
