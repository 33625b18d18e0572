// Package ast defines the expression tree produced by the parser.
package ast

import (
	"math"
	"strconv"
)

// Expr is a node of the expression tree. Every node owns its children:
// trees are built once per input line and never shared.
type Expr interface {
	// Dump renders the expression fully parenthesized.
	Dump() string
	expr()
}

// FormatNumber renders a value the way results are printed: shortest
// decimal representation without exponent, "inf", "-inf" or "NaN".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
