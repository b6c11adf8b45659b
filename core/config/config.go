// File: config.go
// Title: CLI Configuration Loading
// Description: Implements loading of the CLI settings from TOML and YAML
//              files with format auto-detection by extension and defaults
//              for missing keys.
// Author: Advestis
// Version: v0.1.0
// Created: 2025-03-12
// Modified: 2025-03-12
//
// Change History:
// - 2025-03-12 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	amerror "github.com/Advestis/htmlmerger/core/error"
	"github.com/Advestis/htmlmerger/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings holds the CLI configuration. Every field has a default, so a
// partial or empty file is valid.
type Settings struct {
	// InputDir is the directory whose *.html files are merged
	InputDir string `toml:"input_dir" yaml:"input_dir"`

	// OutputFile receives the merged document
	OutputFile string `toml:"output_file" yaml:"output_file"`

	// Clean deletes the input files after a successful merge
	Clean bool `toml:"clean" yaml:"clean"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// LogFormat selects the log output format (text, json)
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// Defaults returns the settings used when no configuration file is given
func Defaults() Settings {
	return Settings{
		OutputFile: "merged.html",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// Load reads the settings from a file, detecting the format from the
// extension. Keys absent from the file keep their default values.
func Load(filePath string) (Settings, error) {
	if stringx.IsBlank(filePath) {
		return Settings{}, amerror.New("config file path cannot be empty").
			WithCode(amerror.CodeInvalidConfig).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return Settings{}, amerror.Newf("config file not found: %s", filePath).
			WithCode(amerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return Settings{}, amerror.Wrap(err, "failed to read config file").
			WithCode(amerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	return LoadFromString(string(content), detectFormat(filePath))
}

// LoadFromString parses the settings from a string in the given format.
// FormatAuto falls back to TOML.
func LoadFromString(content string, format Format) (Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	settings := Defaults()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(content), &settings); err != nil {
			return Settings{}, amerror.Wrap(err, "TOML parse error").
				WithCode(amerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString").
				WithDetail("format", format.String())
		}
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), &settings); err != nil {
			return Settings{}, amerror.Wrap(err, "YAML parse error").
				WithCode(amerror.CodeInvalidConfig).
				WithOperation("config.LoadFromString").
				WithDetail("format", format.String())
		}
	default:
		return Settings{}, amerror.Newf("unsupported config format: %s", format).
			WithCode(amerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString")
	}

	return settings, nil
}

// detectFormat determines the configuration format from the file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
