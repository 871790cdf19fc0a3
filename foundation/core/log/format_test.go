// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text, console and logfmt formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with format tests
// - 2026-10-19 v0.2.0: Stable field order checks

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	entry := NewEntry(LevelWarn, "diagnostic recorded")
	entry.Timestamp = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	entry.Logger = "monkey"
	entry.Fields = Fields{"line": 3, "kind": "let"}
	return entry
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "[WRN] {monkey} diagnostic recorded [kind=let line=3]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterKeepsMessage(t *testing.T) {
	out, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "diagnostic recorded") {
		t.Errorf("Format() = %q", out)
	}
	if !strings.Contains(string(out), "WRN") {
		t.Errorf("Format() lost level tag: %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	entry := testEntry()
	entry.Error = errors.New("bad token")

	out, err := NewLogfmtFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, part := range []string{
		"level=warn",
		`message="diagnostic recorded"`,
		`kind="let" line=3`,
		`error="bad token"`,
	} {
		if !strings.Contains(s, part) {
			t.Errorf("Format() = %q, missing %q", s, part)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatLogfmt).(*LogfmtFormatter); !ok {
		t.Error("GetFormatter(FormatLogfmt) returned the wrong type")
	}
	if _, ok := GetFormatter(Format(42)).(*JSONFormatter); !ok {
		t.Error("GetFormatter(unknown) should fall back to JSON")
	}
}
