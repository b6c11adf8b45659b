// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type with code, severity, cause chain and
//              a details map, compatible with Go's standard error interface
//              and errors.Is/errors.As unwrapping. All errors in this
//              repository are surfaced synchronously to the caller; nothing
//              is retried or recovered internally.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with contextual errors

package error

import (
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity when wrapping one of our own errors
	if amErr, ok := err.(*Error); ok {
		return &Error{
			message:   message,
			cause:     amErr,
			code:      amErr.code,
			severity:  amErr.severity,
			timestamp: time.Now(),
			details:   make(map[string]interface{}),
		}
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and adjusts the severity accordingly
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity sets the error severity explicitly
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a single detail key-value pair
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple detail key-value pairs
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation records the operation during which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the details map
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Operation returns the recorded operation, if any
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the innermost error in the chain
func (e *Error) RootCause() error {
	var current error = e
	for {
		amErr, ok := current.(*Error)
		if !ok || amErr.cause == nil {
			return current
		}
		current = amErr.cause
	}
}

// String returns a detailed multi-line representation, mainly for logs
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s/%s] %s", e.code, e.severity, e.message)
	if e.operation != "" {
		fmt.Fprintf(&b, " (op=%s)", e.operation)
	}
	for k, v := range e.details {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

// HasCode reports whether err (or any error in its chain) carries the code
func HasCode(err error, code Code) bool {
	for err != nil {
		amErr, ok := err.(*Error)
		if !ok {
			return false
		}
		if amErr.code == code {
			return true
		}
		err = amErr.cause
	}
	return false
}

// GetCode returns the code of err, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if amErr, ok := err.(*Error); ok {
		return amErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of err, or SeverityMedium for foreign errors
func GetSeverity(err error) Severity {
	if amErr, ok := err.(*Error); ok {
		return amErr.severity
	}
	return SeverityMedium
}
