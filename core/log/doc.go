// Package log provides structured, leveled logging for the htmlmerger repository.
//
// Package: log
// Title: Structured Logging
// Description: This package implements a small structured logger with text
//              and JSON output, contextual fields and integration with the
//              repository's error package. The merger and the CLI log through
//              it; the mathx core stays pure and never logs.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation with structured logging
//
// Usage:
//
//	logger := log.New().
//		WithName("merger").
//		WithLevel(log.LevelDebug).
//		WithRunID(runID)
//
//	logger.Info("merged files", log.Fields{"count": 2, "output": path})
//	logger.LogError(err)
package log
