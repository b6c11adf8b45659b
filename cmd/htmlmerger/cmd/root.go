package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Advestis/htmlmerger/core/config"
	"github.com/Advestis/htmlmerger/core/log"
	"github.com/Advestis/htmlmerger/utils/stringx"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	settings config.Settings
	logger   *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "htmlmerger",
	Short: "Merge HTML files and play with complex numbers",
	Long: `htmlmerger concatenates HTML files into a single document, keeping
the first file's framing and every file's body in order.

Commands:
  merge    - merge HTML files into one document
  complex  - parse, format and combine complex number literals
  version  - show version information`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log output format (text, json)")
}

// setup loads the settings and builds the shared logger with a fresh run ID
func setup(cmd *cobra.Command, args []string) error {
	settings = config.Defaults()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			printError("failed to load config", err)
			return err
		}
		settings = loaded
	}

	levelName := settings.LogLevel
	if verbose {
		levelName = "debug"
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		printError("invalid log level", err)
		return err
	}

	// Flag beats config file
	formatName := stringx.FirstNonBlank(logFormat, settings.LogFormat)
	format, err := log.ParseFormat(formatName)
	if err != nil {
		printError("invalid log format", err)
		return err
	}

	logger = log.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(os.Stderr).
		WithName("htmlmerger").
		WithRunID(uuid.New().String()[:8])

	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
