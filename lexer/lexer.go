// Package lexer provides the lexical analyzer for arithmetic expressions.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const digitChars = "0123456789"

// numberChars are greedily accepted once a number has started.
// Validation is left to strconv.
const numberChars = digitChars + "."

type Lexer struct {
	input string

	curToken Token
	err      error

	atEOF bool

	pos int // Current position in input.
	col int // Rune column of the next rune, starting at 1.

	start    int // Position of the start of the current token.
	startCol int // Column where the current token started.
}

// New creates a new Lexer for the given input line.
func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		col:      1,
		startCol: 1,
	}
}

// Tokenize scans the whole input and returns its tokens, terminated by a
// TokEOF token. Nothing is returned on error.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokError {
			return nil, l.Err()
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// NextToken scans and returns the next token. Once the input is exhausted,
// TokEOF is returned on every call. After a TokError token, Err reports
// the cause and the lexer only yields TokEOF.
func (l *Lexer) NextToken() Token {
	l.curToken = Token{Type: TokEOF, Pos: l.col}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.atEOF = true
		return 0
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.col++
	return r
}

func (l *Lexer) backup() {
	// If we reached eof, we can't back up.
	// If we are at the beginning of the input, we can't back up.
	if l.atEOF || l.pos == 0 {
		return
	}
	_, n := utf8.DecodeLastRuneInString(l.input[:l.pos])
	l.pos -= n
	l.col--
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) acceptFunc(fn func(rune) bool) bool {
	accepted := false
	for r := l.next(); !l.atEOF && fn(r); r = l.next() {
		accepted = true
	}
	l.backup()
	return accepted
}

func (l *Lexer) text() string {
	return l.input[l.start:l.pos]
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type: tt,
		Pos:  l.startCol,
	}
	l.start = l.pos
	l.startCol = l.col
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startCol = l.col
}

// fail records a lexical error for the current token and drops the rest of
// the input so that subsequent calls yield TokEOF.
func (l *Lexer) fail(kind error, value string) stateFn {
	l.err = &Error{
		Err:   kind,
		Pos:   l.startCol,
		Value: value,
	}
	l.curToken = Token{
		Type: TokError,
		Pos:  l.startCol,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
