// File: config_test.go
// Title: Configuration Loading Tests
// Description: Tests for TOML/YAML settings loading, format detection and
//              defaults.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	amerror "github.com/Advestis/htmlmerger/core/error"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	settings := Defaults()
	if settings.OutputFile != "merged.html" {
		t.Errorf("OutputFile default = %q, want %q", settings.OutputFile, "merged.html")
	}
	if settings.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, want %q", settings.LogLevel, "info")
	}
	if settings.LogFormat != "text" {
		t.Errorf("LogFormat default = %q, want %q", settings.LogFormat, "text")
	}
	if settings.Clean {
		t.Error("Clean should default to false")
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "settings.toml", `
input_dir = "reports"
output_file = "all.html"
clean = true
log_level = "debug"
`)

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.InputDir != "reports" {
		t.Errorf("InputDir = %q, want %q", settings.InputDir, "reports")
	}
	if settings.OutputFile != "all.html" {
		t.Errorf("OutputFile = %q, want %q", settings.OutputFile, "all.html")
	}
	if !settings.Clean {
		t.Error("Clean should be true")
	}
	if settings.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", settings.LogLevel, "debug")
	}
	// Key absent from the file keeps its default
	if settings.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default %q", settings.LogFormat, "text")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "settings.yaml", `
input_dir: reports
log_format: json
`)

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings.InputDir != "reports" {
		t.Errorf("InputDir = %q, want %q", settings.InputDir, "reports")
	}
	if settings.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", settings.LogFormat, "json")
	}
	if settings.OutputFile != "merged.html" {
		t.Errorf("OutputFile = %q, want default %q", settings.OutputFile, "merged.html")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "empty.toml", "")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings != Defaults() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLoadFailures(t *testing.T) {
	t.Run("blank path", func(t *testing.T) {
		_, err := Load("  ")
		if err == nil {
			t.Fatal("Load should fail on a blank path")
		}
		if !amerror.HasCode(err, amerror.CodeInvalidConfig) {
			t.Errorf("code = %v, want INVALID_CONFIG", amerror.GetCode(err))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if err == nil {
			t.Fatal("Load should fail on a missing file")
		}
		if !amerror.HasCode(err, amerror.CodeConfigError) {
			t.Errorf("code = %v, want CONFIG_ERROR", amerror.GetCode(err))
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		path := writeConfig(t, "bad.toml", "input_dir = [unclosed")
		_, err := Load(path)
		if err == nil {
			t.Fatal("Load should fail on malformed TOML")
		}
		if !amerror.HasCode(err, amerror.CodeInvalidConfig) {
			t.Errorf("code = %v, want INVALID_CONFIG", amerror.GetCode(err))
		}
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"settings.toml", FormatTOML},
		{"settings.yaml", FormatYAML},
		{"settings.yml", FormatYAML},
		{"settings.conf", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := detectFormat(tt.path); got != tt.want {
				t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	settings, err := LoadFromString("clean: true", FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if !settings.Clean {
		t.Error("Clean should be true")
	}
}
