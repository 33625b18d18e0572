package parser

import (
	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// parseExpr parses operands joined by binary operators, up to and
// including the end token.
func parseExpr(p *parser, end lexer.TokenType) (ast.Expr, error) {
	left, err := parseUnary(p)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		// The end token is the only way out of a subexpression.
		if tok.Type == end {
			p.nextToken()
			return left, nil
		}
		ledFn, exists := p.ledLookupTable[tok.Type]
		if !exists {
			return nil, &SyntaxError{Err: ErrInvalidBinaryOperator, Token: tok, Expected: end}
		}
		if left, err = ledFn(p, left, p.precedence(tok.Type)); err != nil {
			return nil, err
		}
	}
}

// parseUnary parses an operand: a number, a group or a prefixed operand.
// Prefixes and groups both nest through here, so this is where the depth
// is bounded.
func parseUnary(p *parser) (ast.Expr, error) {
	tok := p.peek()
	if p.depth >= maxDepth {
		return nil, &SyntaxError{Err: ErrTooDeep, Token: tok}
	}
	p.depth++
	defer func() { p.depth-- }()

	nudFn, exists := p.nudLookupTable[tok.Type]
	if !exists {
		return nil, &SyntaxError{Err: ErrInvalidUnaryOperator, Token: tok}
	}
	return nudFn(p)
}

func parsePrimaryExpr(p *parser) (ast.Expr, error) {
	tok := p.nextToken()
	return &ast.NumberExpr{
		Value: tok.Value,
	}, nil
}

func parsePrefixExpr(p *parser) (ast.Expr, error) {
	operator := p.nextToken()
	right, err := parseUnary(p)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpr{
		Operator: operator.Type,
		Right:    right,
	}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume the '('.
	return parseExpr(p, lexer.TokParenRight)
}

// parseBinaryExpr consumes the operator at the cursor, bp being its
// binding power, and its right operand. Operators binding tighter are
// folded into the right operand first. Anything else is left to the
// caller's loop so equal precedence groups to the left: 1 - 2 * 3 - 4 is
// ((1 - (2 * 3)) - 4) = -9, never (1 - ((2 * 3) - 4)) = -1.
func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.nextToken()
	right, err := parseUnary(p)
	if err != nil {
		return nil, err
	}

	for {
		next := p.peek()
		ledFn, exists := p.ledLookupTable[next.Type]
		if !exists || p.precedence(next.Type) <= bp {
			break
		}
		if right, err = ledFn(p, right, p.precedence(next.Type)); err != nil {
			return nil, err
		}
	}

	return &ast.BinaryExpr{
		Left:     left,
		Operator: operator.Type,
		Right:    right,
	}, nil
}
