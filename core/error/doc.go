// Package error provides structured error handling for the htmlmerger repository.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements the error taxonomy shared by the
//              complex-number core (mathx), the HTML merger and the CLI.
//              Errors carry a stable code, a severity and optional details so
//              callers can distinguish malformed input from operations that
//              are deliberately undefined (complex exponent, ordering of
//              complex numbers) without parsing message text.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//
//	import amerror "github.com/Advestis/htmlmerger/core/error"
//
//	err := amerror.New("a complex number's norm cannot be negative").
//		WithCode(amerror.CodeInvalidInput).
//		WithDetail("r", r)
//
//	if amerror.HasCode(err, amerror.CodeUnsupportedOperation) {
//		// operand combination not defined, not a malformed input
//	}
package error
