package lexer

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to test the lexer
func testLexer(t *testing.T, input string, expectedTokens []Token) {
	t.Helper()

	tokens, err := Tokenize(input)
	require.NoError(t, err, "tokenize %q", input)
	if len(tokens) != len(expectedTokens) {
		t.Fatalf("Expected %d tokens, got %d: %v", len(expectedTokens), len(tokens), tokens)
	}
	for i, expectedToken := range expectedTokens {
		token := tokens[i]

		if token.Type != expectedToken.Type {
			t.Fatalf("tests[%d] - wrong type. expected=%q (%s), got=%q (%s)",
				i, expectedToken.Type, expectedToken, token.Type, token)
		}

		if token.Value != expectedToken.Value {
			t.Fatalf("tests[%d] - wrong value. expected=%v (%s), got=%v (%s)",
				i, expectedToken.Value, expectedToken, token.Value, token)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	if len(tokenTypeStrings) != int(FinalToken) {
		t.Fatalf("Expected %d token types in tokenTypeStrings, got %d", FinalToken, len(tokenTypeStrings))
	}
	assert.Equal(t, "TokenType(42)", TokenType(42).String())
}

func TestTokenClassification(t *testing.T) {
	for tt := TokError; tt < FinalToken; tt++ {
		assert.Equal(t, tt == TokPlus || tt == TokMinus, tt.IsUnaryOp(), "unary %s", tt)
		assert.Equal(t, tt.IsOneOf(TokPlus, TokMinus, TokStar, TokSlash), tt.IsBinaryOp(), "binary %s", tt)
	}
}

func TestLexerOperators(t *testing.T) {
	input := "(+-*/)"
	expectedTokens := []Token{
		{Type: TokParenLeft},
		{Type: TokPlus},
		{Type: TokMinus},
		{Type: TokStar},
		{Type: TokSlash},
		{Type: TokParenRight},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerExpression(t *testing.T) {
	input := " 2 + 3.5*\t(4 - .25) / inf\n"
	expectedTokens := []Token{
		{Type: TokNumber, Value: 2},
		{Type: TokPlus},
		{Type: TokNumber, Value: 3.5},
		{Type: TokStar},
		{Type: TokParenLeft},
		{Type: TokNumber, Value: 4},
		{Type: TokMinus},
		{Type: TokNumber, Value: 0.25},
		{Type: TokParenRight},
		{Type: TokSlash},
		{Type: TokNumber, Value: math.Inf(1)},
		{Type: TokEOF},
	}

	testLexer(t, input, expectedTokens)
}

func TestLexerWhitespaceOnly(t *testing.T) {
	testLexer(t, "", []Token{{Type: TokEOF}})
	testLexer(t, " \t\r\n ", []Token{{Type: TokEOF}})
}

func TestLexerDecimalLiterals(t *testing.T) {
	for _, input := range []string{
		"0", "7", "42", "9876543210", "1.", ".5", "0.0", "3.14159", "00012", "1.000001", "123.456",
	} {
		t.Run(input, func(t *testing.T) {
			want, err := strconv.ParseFloat(input, 64)
			require.NoError(t, err)
			testLexer(t, input, []Token{{Type: TokNumber, Value: want}, {Type: TokEOF}})
		})
	}
}

func TestLexerHugeLiteral(t *testing.T) {
	input := "1"
	for i := 0; i < 400; i++ {
		input += "0"
	}
	testLexer(t, input, []Token{{Type: TokNumber, Value: math.Inf(1)}, {Type: TokEOF}})
}

func TestLexerInf(t *testing.T) {
	testLexer(t, "inf", []Token{{Type: TokNumber, Value: math.Inf(1)}, {Type: TokEOF}})
	testLexer(t, "-inf", []Token{{Type: TokMinus}, {Type: TokNumber, Value: math.Inf(1)}, {Type: TokEOF}})
}

func TestLexerPositions(t *testing.T) {
	tokens, err := Tokenize("12 +  (x")
	require.Error(t, err)
	assert.Nil(t, tokens)

	tokens, err = Tokenize("12 +  (3)")
	require.NoError(t, err)
	var positions []int
	for _, tok := range tokens {
		positions = append(positions, tok.Pos)
	}
	assert.Equal(t, []int{1, 4, 7, 8, 9, 10}, positions)
}

func TestLexerErrorCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  error
		pos   int
		value string
	}{
		{
			name:  "Unexpected character",
			input: "1 + @",
			kind:  ErrUnexpectedCharacter,
			pos:   5,
			value: "@",
		},
		{
			name:  "Unexpected unicode character",
			input: "π",
			kind:  ErrUnexpectedCharacter,
			pos:   1,
			value: "π",
		},
		{
			name:  "Multiple decimal points",
			input: "1.2.3",
			kind:  ErrInvalidNumber,
			pos:   1,
			value: "1.2.3",
		},
		{
			name:  "Lone dot",
			input: "2 * .",
			kind:  ErrInvalidNumber,
			pos:   5,
			value: ".",
		},
		{
			name:  "Truncated inf",
			input: "in",
			kind:  ErrInvalidIdentifier,
			pos:   1,
			value: "in",
		},
		{
			name:  "Lone i",
			input: "3 + i",
			kind:  ErrInvalidIdentifier,
			pos:   5,
			value: "i",
		},
		{
			name:  "Wrong letter after i",
			input: "ix",
			kind:  ErrInvalidIdentifier,
			pos:   1,
			value: "ix",
		},
		{
			name:  "Unknown identifier",
			input: "nan",
			kind:  ErrUnexpectedCharacter,
			pos:   1,
			value: "n",
		},
		{
			name:  "Exponent is not part of a number",
			input: "1e5",
			kind:  ErrUnexpectedCharacter,
			pos:   2,
			value: "e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.ErrorIs(t, err, tt.kind)
			assert.Nil(t, tokens)

			var lexErr *Error
			require.ErrorAs(t, err, &lexErr)
			assert.Equal(t, tt.pos, lexErr.Pos)
			assert.Equal(t, tt.value, lexErr.Value)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := Tokenize("1 + @")
	require.EqualError(t, err, `5: unexpected character "@"`)
}

func TestNextTokenAfterError(t *testing.T) {
	l := New("1 $ 2")
	assert.Equal(t, TokNumber, l.NextToken().Type)
	assert.Equal(t, TokError, l.NextToken().Type)
	require.ErrorIs(t, l.Err(), ErrUnexpectedCharacter)
	assert.Equal(t, TokEOF, l.NextToken().Type)
	assert.Equal(t, TokEOF, l.NextToken().Type)
}
