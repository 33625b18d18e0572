package lexer

import (
	"errors"
	"strconv"
)

// Lexical error kinds. Every error returned by the lexer wraps one of them.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidIdentifier   = errors.New("invalid identifier")
)

// Error is a lexical error at a given column of the input.
type Error struct {
	Err   error  // One of the Err* kinds.
	Pos   int    // Column where the offending text starts.
	Value string // The offending text.
}

func (e *Error) Error() string {
	return strconv.Itoa(e.Pos) + ": " + e.Err.Error() + " " + strconv.Quote(e.Value)
}

func (e *Error) Unwrap() error { return e.Err }
