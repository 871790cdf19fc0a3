// File: token.go
// Title: Monkey Token Model
// Description: Defines the lexical categories of the Monkey language, the
//              immutable Token value produced by the lexer, the keyword table
//              and the equality rules used by the parser's expectation checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token model

package token

import (
	"fmt"
)

// Type identifies the lexical category of a token
type Type int

const (
	// Special tokens
	ILLEGAL Type = iota
	EOF

	// Identifiers and literals
	IDENT // add, foobar, x
	INT   // 1343456

	// Operators
	ASSIGN   // =
	PLUS     // +
	MINUS    // -
	BANG     // !
	ASTERISK // *
	SLASH    // /

	LT     // <
	GT     // >
	LT_EQ  // <=
	GT_EQ  // >=
	EQ     // ==
	NOT_EQ // !=

	// Delimiters
	COMMA     // ,
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }

	// Keywords
	FUNCTION // fn
	LET      // let
	TRUE     // true
	FALSE    // false
	IF       // if
	ELSE     // else
	RETURN   // return

	// typeCount sizes dispatch tables indexed by Type
	typeCount
)

// Count is the number of token types; valid types are 0 <= t < Count
const Count = int(typeCount)

var typeNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	LT_EQ:     "<=",
	GT_EQ:     ">=",
	EQ:        "==",
	NOT_EQ:    "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the name used for t in diagnostics
func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a defined token type
func (t Type) Valid() bool {
	return t >= 0 && t < typeCount
}

// HasPayload reports whether tokens of this type carry variable text.
// All other types always spell the same literal.
func (t Type) HasPayload() bool {
	switch t {
	case IDENT, INT, ILLEGAL:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether t is a reserved word
func (t Type) IsKeyword() bool {
	return t >= FUNCTION && t <= RETURN
}

var keywords = map[string]Type{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent returns the keyword type for ident, or IDENT
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Position is a location in the source text
type Position struct {
	Offset int // Byte offset (0-based)
	Line   int // Line number (1-based)
	Column int // Column number in runes (1-based)
}

// String renders the position as line:column
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical unit. Tokens are plain values and never mutated
// after the lexer returns them.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
}

// New creates a token of type t spelled literal
func New(t Type, literal string) Token {
	return Token{Type: t, Literal: literal}
}

// Any returns a wildcard token of type t. For payload-bearing types the
// wildcard equals every token of that type regardless of its literal.
func Any(t Type) Token {
	return Token{Type: t}
}

// IsWildcard reports whether tok stands for "any token of its type"
func (tok Token) IsWildcard() bool {
	return tok.Type.HasPayload() && tok.Literal == ""
}

// Is reports whether tok is of type t, ignoring any payload
func (tok Token) Is(t Type) bool {
	return tok.Type == t
}

// Equal compares type and payload. Positions are ignored, and a wildcard
// of a payload-bearing type matches any token of the same type.
func (tok Token) Equal(other Token) bool {
	if tok.Type != other.Type {
		return false
	}
	if !tok.Type.HasPayload() {
		return true
	}
	if tok.IsWildcard() || other.IsWildcard() {
		return true
	}
	return tok.Literal == other.Literal
}

// String returns a debug representation such as IDENT(foo) or ;
func (tok Token) String() string {
	if tok.Type.HasPayload() {
		return fmt.Sprintf("%s(%s)", tok.Type, tok.Literal)
	}
	return tok.Type.String()
}
