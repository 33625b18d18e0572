package parser

import (
	"errors"
	"fmt"
	"strconv"

	"go.creack.net/calc/lexer"
)

// Syntax error kinds. Every SyntaxError wraps one of them.
var (
	ErrInvalidUnaryOperator  = errors.New("invalid unary operation")
	ErrInvalidBinaryOperator = errors.New("invalid binary operation")
	ErrTooDeep               = errors.New("expression nested too deeply")
)

// SyntaxError reports a token that does not fit the grammar.
type SyntaxError struct {
	Err   error       // One of the kinds above.
	Token lexer.Token // The offending token.

	// Expected is the token that would have closed the subexpression.
	// Only set for ErrInvalidBinaryOperator.
	Expected lexer.TokenType
}

func (e *SyntaxError) Error() string {
	if e.Err == ErrTooDeep {
		return strconv.Itoa(e.Token.Pos) + ": " + e.Err.Error()
	}
	msg := strconv.Itoa(e.Token.Pos) + ": " + e.Err.Error() + ": unexpected " + e.Token.Text()
	if e.Expected != lexer.TokError {
		msg += ", expected operator or " + (lexer.Token{Type: e.Expected}).Text()
	}
	return msg
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// InternalError is a parser bug recovered at the parse boundary. It never
// results from invalid input.
type InternalError struct {
	Value any // The recovered panic value.
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal parser error: %v", e.Value)
}

func (e *InternalError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
