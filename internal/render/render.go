package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/msto63/monkey/foundation/monkey"
	"github.com/msto63/monkey/foundation/monkey/ast"
	"github.com/msto63/monkey/foundation/monkey/token"
	"github.com/msto63/monkey/pkg/core/version"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// ColorMode controls ANSI styling of text output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Renderer writes tokens, parse results and build information
type Renderer struct {
	out    io.Writer
	format Format
	styles Styles
}

// New creates a renderer writing to out
func New(out io.Writer, format Format, color ColorMode) *Renderer {
	lr := lipgloss.NewRenderer(out)
	switch color {
	case ColorAlways:
		lr.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:    out,
		format: format,
		styles: NewStyles(lr),
	}
}

type tokenView struct {
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal" yaml:"literal"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Offset  int    `json:"offset" yaml:"offset"`
}

type diagnosticView struct {
	Message string `json:"message" yaml:"message"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
}

type resultView struct {
	CorrelationID string           `json:"correlation_id" yaml:"correlation_id"`
	Program       map[string]any   `json:"program" yaml:"program"`
	Source        string           `json:"source" yaml:"source"`
	Diagnostics   []diagnosticView `json:"diagnostics" yaml:"diagnostics"`
	DurationMS    float64          `json:"duration_ms" yaml:"duration_ms"`
}

// Tokens writes a token listing
func (r *Renderer) Tokens(tokens []token.Token) error {
	if r.format != FormatText {
		views := make([]tokenView, len(tokens))
		for i, tok := range tokens {
			views[i] = tokenView{
				Type:    tok.Type.String(),
				Literal: tok.Literal,
				Line:    tok.Pos.Line,
				Column:  tok.Pos.Column,
				Offset:  tok.Pos.Offset,
			}
		}
		return r.encode(views)
	}

	for _, tok := range tokens {
		pos := r.styles.Position.Render(fmt.Sprintf("%-7s", tok.Pos))
		kind := r.tokenStyle(tok.Type).Render(fmt.Sprintf("%-8s", tok.Type))
		line := strings.TrimRight(fmt.Sprintf("%s %s %s", pos, kind, tok.Literal), " ")
		if _, err := fmt.Fprintln(r.out, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) tokenStyle(t token.Type) lipgloss.Style {
	switch {
	case t == token.ILLEGAL:
		return r.styles.Illegal
	case t == token.IDENT:
		return r.styles.Identifier
	case t == token.INT:
		return r.styles.Literal
	case t.IsKeyword():
		return r.styles.Keyword
	case t == token.EOF:
		return r.styles.Muted
	default:
		return r.styles.Operator
	}
}

// Result writes a parse result: the rendered statements followed by any
// diagnostics
func (r *Renderer) Result(res *monkey.Result) error {
	if r.format != FormatText {
		view := resultView{
			CorrelationID: res.CorrelationID,
			Program:       ast.Dump(res.Program),
			Source:        res.Program.String(),
			Diagnostics:   make([]diagnosticView, 0, len(res.Diagnostics)),
			DurationMS:    float64(res.Duration.Microseconds()) / 1000,
		}
		for _, d := range res.Diagnostics {
			view.Diagnostics = append(view.Diagnostics, diagnosticView{
				Message: d.Message,
				Line:    d.Pos.Line,
				Column:  d.Pos.Column,
			})
		}
		return r.encode(view)
	}

	var sb strings.Builder
	for _, stmt := range res.Program.Statements {
		sb.WriteString(r.styles.Statement.Render(stmt.String()))
		sb.WriteString("\n")
	}

	for _, d := range res.Diagnostics {
		sb.WriteString(r.styles.Error.Render(fmt.Sprintf("error %s: %s", d.Pos, d.Message)))
		sb.WriteString("\n")
	}

	summary := fmt.Sprintf("%d statement(s), %d diagnostic(s)", len(res.Program.Statements), len(res.Diagnostics))
	if res.HasErrors() {
		sb.WriteString(r.styles.Error.Render(summary))
	} else {
		sb.WriteString(r.styles.OK.Render(summary))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Version writes build information
func (r *Renderer) Version(info version.Info) error {
	if r.format != FormatText {
		return r.encode(info)
	}

	_, err := fmt.Fprintf(r.out, "%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		r.styles.Title.Render("monkey v"+info.Version),
		info.GitCommit,
		info.BuildDate,
		info.GoVersion,
		info.Platform,
	)
	return err
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}
