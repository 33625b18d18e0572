package lexer

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'(': TokParenLeft,
	')': TokParenRight,
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
}

func lexText(l *Lexer) stateFn {
	l.acceptFunc(unicode.IsSpace)
	l.ignore()

	r := l.next()
	if l.atEOF {
		return l.emit(TokEOF)
	}
	switch {
	case strings.ContainsRune(numberChars, r):
		return lexNumber
	case r == 'i':
		return lexInf
	}
	if tok, ok := singles[r]; ok {
		return l.emit(tok)
	}
	return l.fail(ErrUnexpectedCharacter, string(r))
}

// lexNumber scans the rest of a digits and dots run. The first rune is
// already consumed.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(numberChars)
	text := l.text()
	value, err := strconv.ParseFloat(text, 64)
	// Out of range literals saturate to infinity, anything else is malformed.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.fail(ErrInvalidNumber, text)
	}
	tok := l.thisToken(TokNumber)
	tok.Value = value
	return l.emitToken(tok)
}

// lexInf scans the "inf" keyword. The leading 'i' is already consumed.
func lexInf(l *Lexer) stateFn {
	for _, want := range "nf" {
		if r := l.next(); l.atEOF || r != want {
			return l.fail(ErrInvalidIdentifier, l.text())
		}
	}
	tok := l.thisToken(TokNumber)
	tok.Value = math.Inf(1)
	return l.emitToken(tok)
}
