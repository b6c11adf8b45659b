// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels and their ordering, parsing and display
//              helpers used by the logger and the CLI's --verbose handling.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with log levels

package log

import (
	"strings"

	amerror "github.com/Advestis/htmlmerger/core/error"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelDebug is for detailed diagnostic information
	LevelDebug Level = iota

	// LevelInfo is for general operational messages
	LevelInfo

	// LevelWarn is for potentially harmful situations
	LevelWarn

	// LevelError is for errors that abort the current operation
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ShortString returns a fixed-width label for text output
func (l Level) ShortString() string {
	switch l {
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	default:
		return "???"
	}
}

// ShouldLog reports whether a message at this level passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, amerror.Newf("unknown log level %q", level).
			WithCode(amerror.CodeInvalidConfig)
	}
}

// AllLevels returns all levels in ascending order
func AllLevels() []Level {
	return []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
