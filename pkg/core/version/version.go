// ============================================================================
// Monkey - Language Front End
// ============================================================================
//
// Package:     version
// Description: Central version management for the front end components
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the front end
const (
	// Release version of the toolchain
	Platform = "0.1.0"

	// Component versions
	Token    = "0.1.0"
	Lexer    = "0.1.0"
	Parser   = "0.1.0"
	AST      = "0.1.0"
	Frontend = "0.1.0"
)

// Set at build time via -ldflags "-X github.com/msto63/monkey/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "token":
		return Token
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "ast":
		return AST
	case "frontend":
		return Frontend
	default:
		return Platform
	}
}

// Info describes the running build
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Platform,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
