// Package error provides structured error handling for the monkey toolchain.
//
// Package: error
// Title: Structured Error Framework
// Description: Implements an error type carrying a code, a severity, free-form
//              details and the failing operation. Errors stay compatible with
//              the standard error interface and render as JSON for the
//              structured logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the language front end
//
// Parse diagnostics are not errors: the parser records them as strings and
// keeps going. This package is used where the toolchain cannot continue,
// such as unreadable input files, oversized input or invalid configuration.
//
// Usage:
//
//	import mdwerror "github.com/msto63/monkey/foundation/core/error"
//
//	err := mdwerror.New("input exceeds maximum length").
//	  WithCode(mdwerror.CodeInputTooLarge).
//	  WithDetail("length", n).
//	  WithOperation("monkey.Parse")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInputTooLarge) {
//	  // reject the request
//	}
package error
