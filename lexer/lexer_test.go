/*
File    : fen/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize represents a test case for Tokenize.
// Input: source code
// ExpectedTokens: list of expected tokens
type TestTokenize struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []TestTokenize{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(INT_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(INT_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(INT_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(MINUS_OP, "-"),
				NewToken(INT_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: ` == != <= >= && || & | `,
			ExpectedTokens: []Token{
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LE_OP, "<="),
				NewToken(GE_OP, ">="),
				NewToken(AND_OP, "&&"),
				NewToken(OR_OP, "||"),
				NewToken(BIT_AND_OP, "&"),
				NewToken(BIT_OR_OP, "|"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `fn if else while return var abc123 "hello!" __KEY__ true false null`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(WHILE_KEY, "while"),
				NewToken(RETURN_KEY, "return"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "abc123"),
				NewToken(STRING_LIT, "hello!"),
				NewToken(IDENTIFIER_ID, "__KEY__"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NULL_KEY, "null"),
			},
		},
		{
			Input: `
			fn firstEven(n) {
				var i = 0
				while i < n {
					if i == 4 { return i }
					i = i + 1
				}
				return 0
			}
			`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "fn"),
				NewToken(IDENTIFIER_ID, "firstEven"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(ASSIGN_OP, "="),
				NewToken(INT_LIT, "0"),
				NewToken(WHILE_KEY, "while"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(LT_OP, "<"),
				NewToken(IDENTIFIER_ID, "n"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IF_KEY, "if"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(EQ_OP, "=="),
				NewToken(INT_LIT, "4"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "i"),
				NewToken(PLUS_OP, "+"),
				NewToken(INT_LIT, "1"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RETURN_KEY, "return"),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `o.x o.get(y) xs[0]`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "o"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(IDENTIFIER_ID, "o"),
				NewToken(DOT_OP, "."),
				NewToken(IDENTIFIER_ID, "get"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(IDENTIFIER_ID, "xs"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(INT_LIT, "0"),
				NewToken(RIGHT_BRACKET, "]"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens, err := lex.Tokenize()
		require.NoError(t, err)

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var x = 1\nvar y = 2")
	tokens, err := lex.Tokenize()
	require.NoError(t, err)

	require.Len(t, tokens, 8)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[4].Line)
}

func TestLexer_UnrecognizedCharacterFails(t *testing.T) {
	lex := NewLexer(`var x = @`)
	_, err := lex.Tokenize()
	require.Error(t, err)
}

func TestLexer_UnterminatedStringFails(t *testing.T) {
	lex := NewLexer(`"never closed`)
	_, err := lex.Tokenize()
	require.Error(t, err)
}

func TestLexer_NoFractionalNumbers(t *testing.T) {
	// fen accepts integer literals only; a decimal point is not part
	// of a number and is tokenized separately.
	lex := NewLexer(`1.5`)
	tokens, err := lex.Tokenize()
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, DOT_OP, tokens[1].Type)
	assert.Equal(t, INT_LIT, tokens[2].Type)
}
