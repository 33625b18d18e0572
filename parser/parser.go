// Package parser builds expression trees from token sequences by
// precedence climbing.
package parser

import (
	"slices"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// maxDepth bounds the nesting of prefix operators and groups so deep
// input fails with ErrTooDeep before it can exhaust the goroutine stack.
const maxDepth = 10000

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the current token.
	depth  int // Operands being parsed, innermost included.

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	// The cursor relies on a trailing EOF to always have a token to peek.
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokEOF {
		eof := lexer.Token{Type: lexer.TokEOF, Pos: 1}
		if len(tokens) > 0 {
			eof.Pos = tokens[len(tokens)-1].Pos + 1
		}
		tokens = append(slices.Clip(tokens), eof)
	}
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	return p
}

// Parse builds the expression tree for a whole token sequence. Errors from
// invalid input are *SyntaxError, parser bugs are *InternalError.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	return parse(newParser(tokens))
}

// ParseString tokenizes and parses a single input line.
func ParseString(input string) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func parse(p *parser) (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			expr, err = nil, &InternalError{Value: r}
		}
	}()
	return parseExpr(p, lexer.TokEOF)
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

// nextToken consumes the current token. The final EOF is never consumed
// past.
func (p *parser) nextToken() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}
