// File: doc.go
// Title: Configuration Package Documentation
// Description: Package documentation for the config package.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

// Package config loads the CLI settings from TOML or YAML files, with the
// format detected from the file extension. Missing keys fall back to the
// defaults, so an empty file is a valid configuration.
//
// Usage:
//
//	settings, err := config.Load("htmlmerger.toml")
//	if err != nil {
//		return err
//	}
//	fmt.Println(settings.OutputFile)
package config
