/*
File    : goripl/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestTokenizeSimpleCall(t *testing.T) {
	tokens, err := Tokenize("(+ 1 2 3)")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{LPAREN, SYMBOL, INT, INT, INT, RPAREN, EOF}, tokenTypes(tokens))
}

func TestTokenizeCommentsDiscarded(t *testing.T) {
	tokens, err := Tokenize("; a comment\n(+ 1 2) ;#(trailing sexp comment)")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{LPAREN, SYMBOL, INT, INT, RPAREN, EOF}, tokenTypes(tokens))
}

func TestTokenizeQuotingSugar(t *testing.T) {
	tokens, err := Tokenize("'x `(a ~b ~@c)")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{
		QUOTE, SYMBOL,
		QUASI_QUOTE, LPAREN, SYMBOL, UNQUOTE, SYMBOL, UNQUOTE_SPLICE, SYMBOL, RPAREN,
		EOF,
	}, tokenTypes(tokens))
}

func TestTokenizeNullForms(t *testing.T) {
	tokens, err := Tokenize("() None")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{NULL, NULL, EOF}, tokenTypes(tokens))
}

func TestTokenizeNumericTower(t *testing.T) {
	tokens, err := Tokenize("0b101 0o17 0x1F 42 3.14 1+2j 3j")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{INT_BIN, INT_OCT, INT_HEX, INT, FLOAT, COMPLEX, COMPLEX_PURE, EOF}, tokenTypes(tokens))
}

func TestTokenizeKeywordVsSymbolVsString(t *testing.T) {
	tokens, err := Tokenize(`:foo foo "foo"`)
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, KEYWORD, tokens[0].Type)
	assert.Equal(t, ":foo", tokens[0].Literal)
	assert.Equal(t, SYMBOL, tokens[1].Type)
	assert.Equal(t, STRING, tokens[2].Type)
}

func TestTokenizeMapLiteralCommas(t *testing.T) {
	tokens, err := Tokenize(`{:a 1, :b 2}`)
	require.NoError(t, err)
	assert.Equal(t, []TokenType{LBRACE, KEYWORD, INT, COMMA, KEYWORD, INT, RBRACE, EOF}, tokenTypes(tokens))
}

func TestTokenizeBool(t *testing.T) {
	tokens, err := Tokenize("#t #f")
	require.NoError(t, err)
	assert.Equal(t, []TokenType{BOOL, BOOL, EOF}, tokenTypes(tokens))
}

func TestHasBalancedDelimiters(t *testing.T) {
	assert.True(t, HasBalancedDelimiters("(+ 1 (* 2 3))"))
	assert.False(t, HasBalancedDelimiters("(+ 1 (* 2 3)"))
	assert.False(t, HasBalancedDelimiters(")("))
}

func TestLooksLikeOpenForm(t *testing.T) {
	assert.True(t, LooksLikeOpenForm("(+ 1 2"))
	assert.False(t, LooksLikeOpenForm("(+ 1 2)"))
	assert.False(t, LooksLikeOpenForm("42"))
}
