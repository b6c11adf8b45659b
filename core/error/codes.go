// File: codes.go
// Title: Error Code Definitions
// Description: Defines the stable error codes used across the repository.
//              The arithmetic codes mirror the contract of the complex-number
//              core: invalid input, unsupported operand combinations and the
//              deliberate refusal to order complex numbers are three distinct
//              signals and must stay distinguishable.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes used across the repository
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Arithmetic and construction (mathx)
	CodeInvalidInput         Code = "INVALID_INPUT"
	CodeUnsupportedOperation Code = "UNSUPPORTED_OPERATION"
	CodeOrderingUndefined    Code = "ORDERING_UNDEFINED"
	CodeParseFailure         Code = "PARSE_FAILURE"

	// Merger
	CodeMissingInput     Code = "MISSING_INPUT"
	CodeConflictingInput Code = "CONFLICTING_INPUT"
	CodeNotADirectory    Code = "NOT_A_DIRECTORY"
	CodeOperationFailed  Code = "OPERATION_FAILED"

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
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeUnsupportedOperation, CodeOrderingUndefined, CodeParseFailure,
		CodeMissingInput, CodeConflictingInput, CodeNotADirectory, CodeOperationFailed,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeUnsupportedOperation, CodeOrderingUndefined, CodeParseFailure:
		return "arithmetic"
	case CodeMissingInput, CodeConflictingInput, CodeNotADirectory, CodeOperationFailed:
		return "merger"
	case CodeConfigError, CodeInvalidConfig:
		return "config"
	default:
		return "generic"
	}
}
