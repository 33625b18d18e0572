package lexer

import (
	"fmt"
	"slices"
	"strconv"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber

	// Operators.
	TokPlus
	TokMinus
	TokStar
	TokSlash

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber: "NUMBER",

	TokPlus:  "+",
	TokMinus: "-",
	TokStar:  "*",
	TokSlash: "/",

	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// IsUnaryOp reports whether the token can prefix an operand.
func (tt TokenType) IsUnaryOp() bool {
	return tt.IsOneOf(TokPlus, TokMinus)
}

// IsBinaryOp reports whether the token can join two operands.
func (tt TokenType) IsBinaryOp() bool {
	return tt.IsOneOf(TokPlus, TokMinus, TokStar, TokSlash)
}

// Token represents a lexical token of an arithmetic expression.
type Token struct {
	Type  TokenType
	Value float64 // Only set for TokNumber.

	Pos int // Rune column of the first character, starting at 1.
}

func (t Token) String() string {
	if t.Type == TokNumber {
		return fmt.Sprintf("%s[%d]: %v", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]", t.Type, t.Pos)
}

// Text is the token as it reads in the input, used in error messages.
func (t Token) Text() string {
	switch t.Type {
	case TokEOF:
		return "end of input"
	case TokNumber:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return strconv.Quote(t.Type.String())
}
