// File: lexer.go
// Title: Monkey Lexical Analyzer
// Description: Converts Monkey source text into a stream of tokens one
//              character at a time. Tracks byte offsets, lines and columns
//              so diagnostics can point back into the source.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package lexer

import (
	"unicode/utf8"

	"github.com/msto63/monkey/foundation/monkey/token"
)

// Lexer performs lexical analysis of Monkey source text. A Lexer is not
// safe for concurrent use; it belongs to exactly one consumer.
type Lexer struct {
	input    string
	position int  // offset of ch
	readPos  int  // offset after ch
	ch       rune // current character, 0 at end of input
	line     int  // line of ch (1-based)
	column   int  // column of ch (1-based)
	done     bool // end of input reached; further reads are no-ops
}

// New creates a lexer positioned on the first character of input
func New(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.readChar()
	return l
}

// NextToken returns the next token. Once the input is exhausted every call
// returns an EOF token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	pos := token.Position{Offset: l.position, Line: l.line, Column: l.column}
	var tok token.Token

	switch l.ch {
	case '=':
		tok = l.oneOrTwo(token.ASSIGN, token.EQ)
	case '!':
		tok = l.oneOrTwo(token.BANG, token.NOT_EQ)
	case '<':
		tok = l.oneOrTwo(token.LT, token.LT_EQ)
	case '>':
		tok = l.oneOrTwo(token.GT, token.GT_EQ)
	case '+':
		tok = token.New(token.PLUS, "+")
	case '-':
		tok = token.New(token.MINUS, "-")
	case '*':
		tok = token.New(token.ASTERISK, "*")
	case '/':
		tok = token.New(token.SLASH, "/")
	case ',':
		tok = token.New(token.COMMA, ",")
	case ';':
		tok = token.New(token.SEMICOLON, ";")
	case '(':
		tok = token.New(token.LPAREN, "(")
	case ')':
		tok = token.New(token.RPAREN, ")")
	case '{':
		tok = token.New(token.LBRACE, "{")
	case '}':
		tok = token.New(token.RBRACE, "}")
	case 0:
		// A NUL byte ends the input just like the real end does
		l.done = true
		tok = token.New(token.EOF, "")
		tok.Pos = pos
		return tok
	default:
		if isLetter(l.ch) {
			literal := l.readWhile(isLetter)
			tok = token.New(token.LookupIdent(literal), literal)
			tok.Pos = pos
			return tok // readWhile already advanced past the run
		}
		if isDigit(l.ch) {
			tok = token.New(token.INT, l.readWhile(isDigit))
			tok.Pos = pos
			return tok
		}
		tok = token.New(token.ILLEGAL, l.input[l.position:l.readPos])
	}

	tok.Pos = pos
	l.readChar()
	return tok
}

// Tokenize drains the lexer and returns every remaining token, ending with
// exactly one EOF token. Illegal tokens are part of the result.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// oneOrTwo emits the two-character form when the next character is '='
func (l *Lexer) oneOrTwo(single, double token.Type) token.Token {
	if l.peekChar() == '=' {
		first := l.ch
		l.readChar()
		return token.New(double, string(first)+string(l.ch))
	}
	return token.New(single, string(l.ch))
}

// readChar advances to the next character and updates line tracking
func (l *Lexer) readChar() {
	if l.done {
		return
	}

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.column++
	l.position = l.readPos

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.done = true
		return
	}

	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += width
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// readWhile consumes the maximal run of characters accepted by pred
func (l *Lexer) readWhile(pred func(rune) bool) string {
	start := l.position
	for pred(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
