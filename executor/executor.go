// Package executor evaluates expression trees.
package executor

import (
	"fmt"

	"go.creack.net/calc/ast"
	"go.creack.net/calc/lexer"
)

// Evaluate computes the value of a tree. It never fails on a tree built by
// the parser: degenerate arithmetic such as division by zero follows
// IEEE-754. Nodes or operators the parser cannot produce panic.
func Evaluate(expr ast.Expr) float64 {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return e.Value
	case *ast.PrefixExpr:
		return evaluatePrefix(e)
	case *ast.BinaryExpr:
		return evaluateBinary(e)
	default:
		panic(fmt.Errorf("unsupported expression type %T", e))
	}
}

func evaluatePrefix(e *ast.PrefixExpr) float64 {
	right := Evaluate(e.Right)
	switch e.Operator {
	case lexer.TokPlus:
		return right
	case lexer.TokMinus:
		return -right
	default:
		panic(fmt.Errorf("unsupported unary operator %s", e.Operator))
	}
}

func evaluateBinary(e *ast.BinaryExpr) float64 {
	left, right := Evaluate(e.Left), Evaluate(e.Right)
	switch e.Operator {
	case lexer.TokPlus:
		return left + right
	case lexer.TokMinus:
		return left - right
	case lexer.TokStar:
		return left * right
	case lexer.TokSlash:
		return left / right
	default:
		panic(fmt.Errorf("unsupported binary operator %s", e.Operator))
	}
}
