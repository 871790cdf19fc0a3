// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the toolchain for
//              consistent classification of driver, input and configuration
//              failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with front-end codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source input
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"
	CodeIO            Code = "IO_ERROR"
	CodeSyntax        Code = "SYNTAX"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInputTooLarge, CodeIO, CodeSyntax,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInputTooLarge, CodeIO, CodeSyntax, CodeInvalidInput:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command line driver should use
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 1
	case CodeInvalidInput, CodeInputTooLarge, CodeNotFound, CodeIO:
		return 2
	case CodeConfigError, CodeInvalidConfig:
		return 3
	default:
		return 70
	}
}
