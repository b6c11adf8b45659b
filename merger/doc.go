// File: doc.go
// Title: Merger Package Documentation
// Description: Package documentation for the HTML merger.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

// Package merger concatenates HTML files into a single document.
//
// The first input file contributes the shared header (its <html>, <body>
// and <head> opening lines) and trailer (its </body> and </html> lines);
// every other file's framing lines are dropped. Body lines are kept
// grouped per source file, in input order, between that shared framing.
//
// Inputs come either as an explicit file list or as a directory whose
// *.html entries are merged in sorted order. The two are mutually
// exclusive. The output file defaults to merged.html and is always
// excluded from the inputs so repeated merges stay idempotent.
//
// Usage:
//
//	m, err := merger.New(merger.Options{InputDir: "reports/"})
//	if err != nil {
//		return err
//	}
//	if err := m.Merge(false); err != nil {
//		return err
//	}
package merger
