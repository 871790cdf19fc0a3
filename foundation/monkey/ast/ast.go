// File: ast.go
// Title: Monkey Abstract Syntax Tree
// Description: Defines the AST node hierarchy produced by the Monkey parser:
//              the Program root, the statement forms and the expression
//              forms. Every node renders back to source-like text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial node set (let, return, expression statements)

package ast

import (
	"strings"

	"github.com/msto63/monkey/foundation/monkey/token"
)

// Node is implemented by every AST node
type Node interface {
	// TokenLiteral returns the literal of the token the node starts with
	TokenLiteral() string
	// String renders the node as source-like text
	String() string
}

// Statement is a node that may appear at the top level of a Program.
// The set of statements is closed to this package.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parse. Statement order is source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// LetStatement binds Name to Value: let <name> = <value>;
type LetStatement struct {
	Token token.Token // the LET token
	Name  *Identifier
	Value Expression // nil when no value was parsed
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }

func (ls *LetStatement) String() string {
	var sb strings.Builder
	sb.WriteString(ls.TokenLiteral())
	sb.WriteString(" ")
	if ls.Name != nil {
		sb.WriteString(ls.Name.String())
	}
	sb.WriteString(" = ")
	if ls.Value != nil {
		sb.WriteString(ls.Value.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ReturnStatement: return <value>;
type ReturnStatement struct {
	Token       token.Token // the RETURN token
	ReturnValue Expression  // nil for a bare return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }

func (rs *ReturnStatement) String() string {
	var sb strings.Builder
	sb.WriteString(rs.TokenLiteral())
	sb.WriteString(" ")
	if rs.ReturnValue != nil {
		sb.WriteString(rs.ReturnValue.String())
	}
	sb.WriteString(";")
	return sb.String()
}

// ExpressionStatement wraps an expression used in statement position
type ExpressionStatement struct {
	Token      token.Token // first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }

func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// Identifier is a name reference
type Identifier struct {
	Token token.Token // the IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral holds the parsed 64-bit value of an INT token
type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
