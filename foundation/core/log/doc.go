// Package log provides structured logging for the monkey toolchain.
//
// Package: log
// Title: Structured Logging Framework
// Description: Implements a small structured logger with levels, output
//              formats, persistent context fields, correlation IDs and
//              operation timers. The front end logs through it at debug
//              level; the command line driver decides level, format and
//              destination from its configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering and audit level, added LevelOff
//                      and lipgloss based console colors
//
// Usage:
//
//	import mdwlog "github.com/msto63/monkey/foundation/core/log"
//
//	logger := mdwlog.New().
//	  WithLevel(mdwlog.LevelDebug).
//	  WithFormat(mdwlog.FormatConsole).
//	  WithField("component", "monkey-parser")
//
//	logger.Debug("statement parsed", mdwlog.Fields{"kind": "let"})
//
//	timer := logger.StartTimer("parse_program")
//	// ... parse
//	timer.Stop()
package log
