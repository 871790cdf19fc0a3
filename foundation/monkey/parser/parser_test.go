// File: parser_test.go
// Title: Monkey Parser Unit Tests
// Description: Tests for statement parsing, diagnostics and recovery, the
//              integer leniency rule and the prefix/infix extension points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwlog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/monkey/ast"
	"github.com/msto63/monkey/foundation/monkey/lexer"
	"github.com/msto63/monkey/foundation/monkey/token"
)

func parse(t *testing.T, input string) (*ast.Program, *Parser) {
	t.Helper()
	p := New(lexer.New(input), Options{Logger: mdwlog.Discard()})
	program := p.ParseProgram()
	require.NotNil(t, program)
	return program, p
}

func requireNoErrors(t *testing.T, p *Parser) {
	t.Helper()
	require.Empty(t, p.Errors(), "unexpected parse errors: %s", strings.Join(p.Errors(), "; "))
}

func TestLetStatements(t *testing.T) {
	program, p := parse(t, `let x = 5; let y = 10; let foobar = 838383;`)
	requireNoErrors(t, p)
	require.Len(t, program.Statements, 3)

	tests := []struct {
		name  string
		value int64
	}{
		{"x", 5},
		{"y", 10},
		{"foobar", 838383},
	}

	for i, tt := range tests {
		stmt, ok := program.Statements[i].(*ast.LetStatement)
		require.True(t, ok, "statement %d is %T", i, program.Statements[i])
		assert.Equal(t, "let", stmt.TokenLiteral())
		assert.Equal(t, tt.name, stmt.Name.Value)
		assert.Equal(t, tt.name, stmt.Name.TokenLiteral())

		lit, ok := stmt.Value.(*ast.IntegerLiteral)
		require.True(t, ok, "value %d is %T", i, stmt.Value)
		assert.Equal(t, tt.value, lit.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program, p := parse(t, `return 5; return 10; return 9993322;`)
	requireNoErrors(t, p)
	require.Len(t, program.Statements, 3)

	want := []int64{5, 10, 9993322}
	for i, stmt := range program.Statements {
		ret, ok := stmt.(*ast.ReturnStatement)
		require.True(t, ok, "statement %d is %T", i, stmt)
		assert.Equal(t, "return", ret.TokenLiteral())

		lit, ok := ret.ReturnValue.(*ast.IntegerLiteral)
		require.True(t, ok)
		assert.Equal(t, want[i], lit.Value)
	}
}

func TestBareReturn(t *testing.T) {
	tests := []string{"return;", "return"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			program, p := parse(t, input)
			requireNoErrors(t, p)
			require.Len(t, program.Statements, 1)

			ret, ok := program.Statements[0].(*ast.ReturnStatement)
			require.True(t, ok)
			assert.Nil(t, ret.ReturnValue)
			assert.Equal(t, "return ;", ret.String())
		})
	}
}

func TestIntegerLiteralExpression(t *testing.T) {
	program, p := parse(t, `5;`)
	requireNoErrors(t, p)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
	assert.Equal(t, "5", lit.TokenLiteral())
}

func TestIdentifierExpression(t *testing.T) {
	program, p := parse(t, `foobar`)
	requireNoErrors(t, p)
	require.Len(t, program.Statements, 1)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)

	id, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", id.Value)
}

func TestIntegerLiteralBounds(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0;", 0},
		{"007;", 7},
		{"9223372036854775807;", math.MaxInt64},
		{"9223372036854775808;", 0},
		{"99999999999999999999999;", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program, p := parse(t, tt.input)
			requireNoErrors(t, p)
			require.Len(t, program.Statements, 1)

			stmt := program.Statements[0].(*ast.ExpressionStatement)
			lit, ok := stmt.Expression.(*ast.IntegerLiteral)
			require.True(t, ok)
			assert.Equal(t, tt.want, lit.Value)
		})
	}
}

func TestMalformedLetStatements(t *testing.T) {
	program, p := parse(t, `let x 5; let = 10; let 838383;`)

	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{
		"expected next token to be =, got INT instead",
		"expected next token to be IDENT, got = instead",
		"expected next token to be IDENT, got INT instead",
	}, p.Errors())
}

func TestRecoveryKeepsLaterStatements(t *testing.T) {
	program, p := parse(t, `let x 5; let y = 7; return 1;`)

	require.Len(t, p.Errors(), 1)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, "let y = 7;return 1;", program.String())
}

func TestDiagnosticPositions(t *testing.T) {
	_, p := parse(t, "let x = 1;\nlet y 2;")

	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, token.Position{Offset: 17, Line: 2, Column: 7}, diags[0].Pos)
	assert.Equal(t, "2:7: expected next token to be =, got INT instead", diags[0].String())
}

func TestMissingPrefixHandler(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		statements int
		errors     []string
	}{
		{
			name:   "illegal character",
			input:  "@;",
			errors: []string{"no prefix parse function for ILLEGAL found"},
		},
		{
			name:   "operator in prefix position",
			input:  "-5;",
			errors: []string{"no prefix parse function for - found"},
		},
		{
			name:   "let without value",
			input:  "let x = ;",
			errors: []string{"no prefix parse function for ; found"},
		},
		{
			name:   "return with keyword value",
			input:  "return true;",
			errors: []string{"no prefix parse function for TRUE found"},
		},
		{
			name:       "call without infix handler",
			input:      "f(x)",
			statements: 1,
			errors:     []string{"no prefix parse function for ( found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, p := parse(t, tt.input)
			assert.Len(t, program.Statements, tt.statements)
			assert.Equal(t, tt.errors, p.Errors())
		})
	}
}

func TestDiagnosticsReturnsCopy(t *testing.T) {
	_, p := parse(t, "let 1;")

	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	diags[0].Message = "changed"

	assert.Equal(t, "expected next token to be IDENT, got INT instead", p.Errors()[0])
}

func TestTrailingTokensAreConsumed(t *testing.T) {
	program, p := parse(t, "let x = 5 6 7; 8;")
	requireNoErrors(t, p)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, "let x = 5;8", program.String())
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", ";;;"} {
		program, p := parse(t, input)
		assert.Empty(t, program.Statements, "input %q", input)
		if input != ";;;" {
			assert.Empty(t, p.Errors())
		}
	}
}

func TestPrecedenceOf(t *testing.T) {
	tests := []struct {
		typ  token.Type
		want Precedence
	}{
		{token.EQ, Equals},
		{token.NOT_EQ, Equals},
		{token.LT, LessGreater},
		{token.GT_EQ, LessGreater},
		{token.PLUS, Sum},
		{token.MINUS, Sum},
		{token.ASTERISK, Product},
		{token.SLASH, Product},
		{token.LPAREN, Call},
		{token.IDENT, Lowest},
		{token.SEMICOLON, Lowest},
		{token.Type(-1), Lowest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PrecedenceOf(tt.typ), "type %v", tt.typ)
	}

	assert.True(t, Lowest < Equals)
	assert.True(t, Equals < LessGreater)
	assert.True(t, LessGreater < Sum)
	assert.True(t, Sum < Product)
	assert.True(t, Product < Prefix)
	assert.True(t, Prefix < Call)
}

// registerGrouping installs infix handlers that fold binary operators into
// identifiers spelling the fully parenthesized expression
func registerGrouping(p *Parser) {
	fold := func(left ast.Expression) ast.Expression {
		op := p.CurrentToken()
		precedence := p.CurrentPrecedence()
		p.NextToken()

		right := p.ParseExpression(precedence)
		if right == nil {
			return nil
		}
		text := "(" + left.String() + " " + op.Literal + " " + right.String() + ")"
		return &ast.Identifier{Token: op, Value: text}
	}

	for _, t := range []token.Type{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.EQ, token.NOT_EQ, token.LT, token.GT, token.LT_EQ, token.GT_EQ,
	} {
		p.RegisterInfix(t, fold)
	}
}

func TestInfixExtensionPoint(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 * 2 + 3;", "((1 * 2) + 3)"},
		{"1 + 2 + 3;", "((1 + 2) + 3)"},
		{"a - b - c;", "((a - b) - c)"},
		{"a * b / c;", "((a * b) / c)"},
		{"a * b == c - d;", "((a * b) == (c - d))"},
		{"a < b == c > d;", "((a < b) == (c > d))"},
		{"a <= b != c >= d;", "((a <= b) != (c >= d))"},
		{"x + y * z - w / v;", "((x + (y * z)) - (w / v))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := New(lexer.New(tt.input), Options{Logger: mdwlog.Discard()})
			registerGrouping(p)

			program := p.ParseProgram()
			requireNoErrors(t, p)
			require.Len(t, program.Statements, 1)
			assert.Equal(t, tt.want, program.String())
		})
	}
}

func TestInfixExtensionInLetValue(t *testing.T) {
	p := New(lexer.New("let total = a + b * c; return a == b;"), Options{Logger: mdwlog.Discard()})
	registerGrouping(p)

	program := p.ParseProgram()
	requireNoErrors(t, p)
	assert.Equal(t, "let total = (a + (b * c));return (a == b);", program.String())
}

func TestInfixMissingRightOperand(t *testing.T) {
	p := New(lexer.New("1 + ;"), Options{Logger: mdwlog.Discard()})
	registerGrouping(p)

	program := p.ParseProgram()
	assert.Empty(t, program.Statements)
	assert.Equal(t, []string{"no prefix parse function for ; found"}, p.Errors())
}

func TestPrefixExtensionPoint(t *testing.T) {
	p := New(lexer.New("true; false;"), Options{Logger: mdwlog.Discard()})
	boolean := func() ast.Expression {
		tok := p.CurrentToken()
		return &ast.Identifier{Token: tok, Value: "bool:" + tok.Literal}
	}
	p.RegisterPrefix(token.TRUE, boolean)
	p.RegisterPrefix(token.FALSE, boolean)

	program := p.ParseProgram()
	requireNoErrors(t, p)
	assert.Equal(t, "bool:truebool:false", program.String())
}

func TestParserLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatLogfmt,
		Output: &buf,
	})

	p := New(lexer.New("let = 1;"), Options{Logger: logger})
	p.ParseProgram()

	out := buf.String()
	assert.Contains(t, out, `component="monkey-parser"`)
	assert.Contains(t, out, `message="Recorded parse diagnostic"`)
	assert.Contains(t, out, `message="Monkey parsing completed"`)
	assert.Contains(t, out, "diagnostics=1")
}
