// File: format.go
// Title: Log Output Formatters
// Description: Implements the text and JSON formatters for log entries.
//              Text output is meant for terminals, JSON for machine
//              consumption.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with text and JSON formatters

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	amerror "github.com/Advestis/htmlmerger/core/error"
)

// Format represents the log output format
type Format int

const (
	// FormatText is human-readable single-line output (default)
	FormatText Format = iota

	// FormatJSON is one JSON object per line
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, amerror.Newf("unknown log format %q", format).
			WithCode(amerror.CodeInvalidConfig)
	}
}

// Formatter renders a log entry into bytes ready for the output writer
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter renders entries as single human-readable lines
type TextFormatter struct {
	// TimestampFormat overrides the default time layout
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: time.RFC3339}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	layout := f.TimestampFormat
	if layout == "" {
		layout = time.RFC3339
	}

	fmt.Fprintf(&b, "%s %s", entry.Timestamp.Format(layout), entry.Level.ShortString())
	if entry.Logger != "" {
		fmt.Fprintf(&b, " [%s]", entry.Logger)
	}
	fmt.Fprintf(&b, " %s", entry.Message)

	if entry.RunID != "" {
		fmt.Fprintf(&b, " run_id=%s", entry.RunID)
	}

	// Deterministic field order for stable output
	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}

	if entry.Error != nil {
		fmt.Fprintf(&b, " error=%q", entry.Error.Error())
	}

	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// JSONFormatter renders entries as one JSON object per line
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	payload := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}
	if entry.Logger != "" {
		payload["logger"] = entry.Logger
	}
	if entry.RunID != "" {
		payload["run_id"] = entry.RunID
	}
	for k, v := range entry.Fields {
		payload[k] = v
	}
	if entry.Error != nil {
		payload["error"] = entry.Error.Error()
		if amErr, ok := entry.Error.(*amerror.Error); ok {
			payload["error_code"] = amErr.Code().String()
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, amerror.Wrap(err, "failed to marshal log entry").
			WithCode(amerror.CodeInternal)
	}
	return append(data, '\n'), nil
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}
