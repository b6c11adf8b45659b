// File: doc.go
// Title: File Utilities Package Documentation
// Description: Package documentation for the filex utility package.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

// Package filex provides small file system helpers used by the merger:
// existence and type checks, line-oriented reading and writing, listing
// directory entries by extension, and safe removal.
//
// All helpers wrap failures with the offending path so callers can log
// them without reconstructing context.
package filex
