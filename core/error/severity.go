// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The arithmetic codes are
//              all caller mistakes and therefore low severity; only failures
//              while writing merged output reach high severity.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake that does not affect the process
	// Examples: malformed complex literal, negative modulus, unknown representation
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects the current operation only
	// Examples: conflicting merger inputs, invalid configuration values
	SeverityMedium

	// SeverityHigh indicates a serious error that aborts the current run
	// Examples: output directory missing, merged file cannot be written
	SeverityHigh
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-2)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeNotADirectory, CodeOperationFailed:
		return SeverityHigh

	case CodeMissingInput, CodeConflictingInput, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium

	case CodeInvalidInput, CodeUnsupportedOperation, CodeOrderingUndefined, CodeParseFailure:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
