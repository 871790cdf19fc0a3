// File: precedence.go
// Title: Operator Precedence Table
// Description: Binding strengths used by the Pratt expression parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial precedence table

package parser

import (
	"github.com/msto63/monkey/foundation/monkey/token"
)

// Precedence is the binding strength of an operator. Higher binds tighter.
type Precedence int

const (
	_ Precedence = iota
	Lowest
	Equals      // == !=
	LessGreater // < > <= >=
	Sum         // + -
	Product     // * /
	Prefix      // -x !x
	Call        // f(x)
)

func (p Precedence) String() string {
	switch p {
	case Lowest:
		return "lowest"
	case Equals:
		return "equals"
	case LessGreater:
		return "less-greater"
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Prefix:
		return "prefix"
	case Call:
		return "call"
	default:
		return "none"
	}
}

var precedences = [token.Count]Precedence{
	token.EQ:       Equals,
	token.NOT_EQ:   Equals,
	token.LT:       LessGreater,
	token.GT:       LessGreater,
	token.LT_EQ:    LessGreater,
	token.GT_EQ:    LessGreater,
	token.PLUS:     Sum,
	token.MINUS:    Sum,
	token.ASTERISK: Product,
	token.SLASH:    Product,
	token.LPAREN:   Call,
}

// PrecedenceOf returns the infix binding strength of t, or Lowest when t
// is not an infix operator
func PrecedenceOf(t token.Type) Precedence {
	if t.Valid() && precedences[t] != 0 {
		return precedences[t]
	}
	return Lowest
}
