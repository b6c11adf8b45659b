// Package stringx provides small string helpers shared across the repository.
//
// Package: stringx
// Title: String Utilities
// Description: This package holds the string helpers used by the complex
//              literal parser, the configuration loader and the merger:
//              blank detection, multi-token stripping and HTML tag-prefix
//              matching.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation
package stringx
