package ast

import (
	"fmt"

	"go.creack.net/calc/lexer"
)

// NumberExpr is a literal. inf is a literal too.
type NumberExpr struct {
	Value float64
}

func (*NumberExpr) expr() {}

func (n *NumberExpr) Dump() string {
	return FormatNumber(n.Value)
}

// PrefixExpr is a unary plus or negation.
type PrefixExpr struct {
	Operator lexer.TokenType // TokPlus or TokMinus.
	Right    Expr
}

func (*PrefixExpr) expr() {}

func (p *PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator, p.Right.Dump())
}

// BinaryExpr is an addition, subtraction, multiplication or division.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.TokenType // TokPlus, TokMinus, TokStar or TokSlash.
	Right    Expr
}

func (*BinaryExpr) expr() {}

func (b *BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator, b.Right.Dump())
}
