// File: monkey.go
// Title: Monkey Front End
// Description: High-level entry point that runs the lexer and parser over a
//              source string. Enforces the input size limit, tags every run
//              with a correlation ID and times it through the logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial front end with Tokenize and Parse

package monkey

import (
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
	mdwlog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/monkey/ast"
	"github.com/msto63/monkey/foundation/monkey/lexer"
	"github.com/msto63/monkey/foundation/monkey/parser"
	"github.com/msto63/monkey/foundation/monkey/token"
	"github.com/msto63/monkey/pkg/core/cache"
)

// DefaultMaxInputLength is the input limit used when Options leaves it unset
const DefaultMaxInputLength = 1 << 20

// Frontend runs the lexer and parser. It holds no per-run state and may be
// used from several goroutines; each call builds its own lexer and parser.
type Frontend struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the front end
type Options struct {
	// Logger for front end operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxInputLength limits the source size in bytes (default: 1 MiB)
	MaxInputLength int

	// TokenCache memoizes Tokenize results (optional, shared between front ends)
	TokenCache *cache.Cache
}

// Result is the outcome of a Parse call
type Result struct {
	// Program is never nil; statements that failed to parse are missing
	Program *ast.Program

	// Diagnostics in encounter order
	Diagnostics []parser.Diagnostic

	// Duration of the lex and parse run
	Duration time.Duration

	// CorrelationID identifies the run in log output
	CorrelationID string
}

// HasErrors reports whether the parser recorded any diagnostics
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Errors returns the diagnostic messages
func (r *Result) Errors() []string {
	msgs := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		msgs[i] = d.Message
	}
	return msgs
}

// NewFrontend creates a front end with the given options
func NewFrontend(opts ...Options) *Frontend {
	var opt Options
	if len(opts) > 0 {
		opt = opts[0]
	}

	if opt.Logger == nil {
		opt.Logger = mdwlog.GetDefault()
	}
	if opt.MaxInputLength <= 0 {
		opt.MaxInputLength = DefaultMaxInputLength
	}

	return &Frontend{
		logger:  opt.Logger.WithField("component", "monkey-frontend"),
		options: opt,
	}
}

// MaxInputLength returns the effective input limit
func (f *Frontend) MaxInputLength() int {
	return f.options.MaxInputLength
}

// Tokenize lexes input completely. The result ends with one EOF token.
func (f *Frontend) Tokenize(input string) ([]token.Token, error) {
	runID := uuid.NewString()
	logger := f.logger.WithCorrelationID(runID)
	timer := logger.StartTimer("tokenize")

	if err := f.checkInput(input, "tokenize", runID); err != nil {
		logger.LogError(err)
		timer.StopWithError(err)
		return nil, err
	}

	if f.options.TokenCache != nil {
		if tokens, ok := f.options.TokenCache.Get(input); ok {
			timer.WithField("tokens", len(tokens)).WithField("cached", true).Stop()
			return tokens, nil
		}
	}

	tokens := lexer.New(input).Tokenize()

	if f.options.TokenCache != nil {
		f.options.TokenCache.Set(input, tokens)
	}

	timer.WithField("tokens", len(tokens)).WithField("cached", false).Stop()
	return tokens, nil
}

// Parse lexes and parses input. Syntax problems are reported in the
// Result's diagnostics; the error is reserved for inputs that cannot be
// processed at all.
func (f *Frontend) Parse(input string) (*Result, error) {
	runID := uuid.NewString()
	logger := f.logger.WithCorrelationID(runID)
	timer := logger.StartTimer("parse")

	if err := f.checkInput(input, "parse", runID); err != nil {
		logger.LogError(err)
		timer.StopWithError(err)
		return nil, err
	}

	logger.Debug("Parsing source", mdwlog.Fields{
		"length": len(input),
	})

	p := parser.New(lexer.New(input), parser.Options{Logger: logger})
	program := p.ParseProgram()
	diags := p.Diagnostics()

	for _, d := range diags {
		logger.Info("Syntax diagnostic", mdwlog.Fields{
			"diagnostic": d.Message,
			"line":       d.Pos.Line,
			"column":     d.Pos.Column,
		})
	}

	duration := timer.
		WithField("statements", len(program.Statements)).
		WithField("diagnostics", len(diags)).
		Stop()

	return &Result{
		Program:       program,
		Diagnostics:   diags,
		Duration:      duration,
		CorrelationID: runID,
	}, nil
}

func (f *Frontend) checkInput(input, operation, runID string) error {
	if len(input) <= f.options.MaxInputLength {
		return nil
	}
	return mdwerror.Newf("input exceeds maximum length: %d > %d", len(input), f.options.MaxInputLength).
		WithCode(mdwerror.CodeInputTooLarge).
		WithOperation(operation).
		WithCorrelationID(runID).
		WithDetail("length", len(input)).
		WithDetail("max_length", f.options.MaxInputLength)
}

// Parse runs a front end with default options over input
func Parse(input string) (*Result, error) {
	return NewFrontend().Parse(input)
}
