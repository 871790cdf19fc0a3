// File: parser.go
// Title: Monkey Pratt Parser
// Description: Builds a Monkey AST from a token stream using recursive
//              descent for statements and precedence climbing for
//              expressions. Problems are collected as diagnostics; a parse
//              never fails as a whole.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser with let, return and expression statements

package parser

import (
	"fmt"
	"strconv"

	mdwlog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/monkey/ast"
	"github.com/msto63/monkey/foundation/monkey/lexer"
	"github.com/msto63/monkey/foundation/monkey/token"
)

type (
	// PrefixFn parses an expression starting at the current token
	PrefixFn func() ast.Expression
	// InfixFn parses an operator at the current token given its left operand
	InfixFn func(left ast.Expression) ast.Expression
)

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Diagnostic is a recoverable parse problem
type Diagnostic struct {
	Message string
	Pos     token.Position
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Parser turns the tokens of one Lexer into a Program. The parser owns its
// lexer; neither may be shared.
type Parser struct {
	l      *lexer.Lexer
	logger *mdwlog.Logger

	diagnostics []Diagnostic

	cur  token.Token
	peek token.Token

	prefixFns [token.Count]PrefixFn
	infixFns  [token.Count]InfixFn
}

// New creates a parser reading from l. Only identifier and integer
// prefix handlers are registered.
func New(l *lexer.Lexer, opts ...Options) *Parser {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Logger == nil {
		opt.Logger = mdwlog.GetDefault()
	}

	p := &Parser{
		l:      l,
		logger: opt.Logger.WithField("component", "monkey-parser"),
	}

	p.RegisterPrefix(token.IDENT, p.parseIdentifier)
	p.RegisterPrefix(token.INT, p.parseIntegerLiteral)

	// Fill cur and peek
	p.NextToken()
	p.NextToken()

	return p
}

// RegisterPrefix installs fn for expressions starting with a t token,
// replacing any earlier handler
func (p *Parser) RegisterPrefix(t token.Type, fn PrefixFn) {
	if t.Valid() {
		p.prefixFns[t] = fn
	}
}

// RegisterInfix installs fn for t in operator position. The operator's
// binding strength comes from PrecedenceOf.
func (p *Parser) RegisterInfix(t token.Type, fn InfixFn) {
	if t.Valid() {
		p.infixFns[t] = fn
	}
}

// ParseProgram parses statements until end of input. Statements that fail
// to parse are left out of the Program and reported through Errors.
func (p *Parser) ParseProgram() *ast.Program {
	p.logger.Debug("Starting Monkey parsing", mdwlog.Fields{
		"first_token": p.cur.String(),
	})

	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.NextToken()
	}

	p.logger.Debug("Monkey parsing completed", mdwlog.Fields{
		"statements":  len(program.Statements),
		"diagnostics": len(p.diagnostics),
	})

	return program
}

// Errors returns the diagnostic messages in the order they were found
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.diagnostics))
	for i, d := range p.diagnostics {
		msgs[i] = d.Message
	}
	return msgs
}

// Diagnostics returns the diagnostics with their source positions
func (p *Parser) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(p.diagnostics))
	copy(out, p.diagnostics)
	return out
}

// CurrentToken returns the token under the cursor
func (p *Parser) CurrentToken() token.Token { return p.cur }

// PeekToken returns the lookahead token
func (p *Parser) PeekToken() token.Token { return p.peek }

// NextToken shifts the lookahead window by one token
func (p *Parser) NextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// CurrentPrecedence is the infix binding strength of the current token
func (p *Parser) CurrentPrecedence() Precedence { return PrecedenceOf(p.cur.Type) }

// PeekPrecedence is the infix binding strength of the lookahead token
func (p *Parser) PeekPrecedence() Precedence { return PrecedenceOf(p.peek.Type) }

// ParseExpression parses an expression whose operators all bind tighter
// than precedence. It returns nil when no expression starts at the current
// token; a diagnostic has been recorded in that case.
func (p *Parser) ParseExpression(precedence Precedence) ast.Expression {
	var prefix PrefixFn
	if p.cur.Type.Valid() {
		prefix = p.prefixFns[p.cur.Type]
	}
	if prefix == nil {
		p.noPrefixParseFnError(p.cur)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	// Equal precedence stops the loop, so operators associate to the left
	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.PeekPrecedence() {
		infix := p.infixFns[p.peek.Type]
		if infix == nil {
			return left
		}

		p.NextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LET:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case token.RETURN:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	return nil
}

func (p *Parser) parseLetStatement() *ast.LetStatement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.NextToken()
	stmt.Value = p.ParseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	p.skipToSemicolon()
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.cur}

	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.EOF) {
		p.NextToken()
		return stmt
	}

	p.NextToken()
	stmt.ReturnValue = p.ParseExpression(Lowest)
	if stmt.ReturnValue == nil {
		return nil
	}

	p.skipToSemicolon()
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.cur}

	stmt.Expression = p.ParseExpression(Lowest)
	if stmt.Expression == nil {
		return nil
	}

	// The semicolon is optional
	if p.peekTokenIs(token.SEMICOLON) {
		p.NextToken()
	}

	return stmt
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.cur}

	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		// Out of range literals read as zero
		p.logger.Debug("Integer literal out of range", mdwlog.Fields{
			"literal": p.cur.Literal,
			"line":    p.cur.Pos.Line,
			"column":  p.cur.Pos.Column,
		})
		value = 0
	}
	lit.Value = value

	return lit
}

// skipToSemicolon moves the cursor onto the terminating ';' or EOF
func (p *Parser) skipToSemicolon() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.NextToken()
	}
}

// synchronize discards the rest of an abandoned statement
func (p *Parser) synchronize() {
	p.skipToSemicolon()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.cur.Is(t)
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peek.Is(t)
}

// expectPeek advances when the lookahead is any token of type t and
// records a diagnostic otherwise
func (p *Parser) expectPeek(t token.Type) bool {
	if token.Any(t).Equal(p.peek) {
		p.NextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", t, p.peek.Type)
	p.addDiagnostic(msg, p.peek.Pos)
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	msg := fmt.Sprintf("no prefix parse function for %s found", tok.Type)
	p.addDiagnostic(msg, tok.Pos)
}

func (p *Parser) addDiagnostic(msg string, pos token.Position) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Message: msg, Pos: pos})
	p.logger.Debug("Recorded parse diagnostic", mdwlog.Fields{
		"diagnostic": msg,
		"line":       pos.Line,
		"column":     pos.Column,
	})
}
