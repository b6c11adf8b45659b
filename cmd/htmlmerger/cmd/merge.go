package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Advestis/htmlmerger/merger"
)

var (
	mergeInputDir string
	mergeOutput   string
	mergeClean    bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge HTML files into a single document",
	Long: `Merge concatenates HTML files into one document. Inputs come either
as explicit file arguments or as a directory whose *.html files are merged
in sorted order. The first file's <html>, <body> and <head> lines frame the
result; the output file defaults to merged.html.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeInputDir, "input-dir", "d", "", "directory containing the HTML files to merge")
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output file (default merged.html)")
	mergeCmd.Flags().BoolVar(&mergeClean, "clean", false, "delete the input files after merging")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputDir := mergeInputDir
	if inputDir == "" && len(args) == 0 {
		inputDir = settings.InputDir
	}
	output := mergeOutput
	if output == "" {
		output = settings.OutputFile
	}
	clean := mergeClean || settings.Clean

	m, err := merger.New(merger.Options{
		Files:      args,
		InputDir:   inputDir,
		OutputFile: output,
		Logger:     logger,
	})
	if err != nil {
		logger.LogError(err)
		return err
	}

	if err := m.Merge(clean); err != nil {
		logger.LogError(err)
		return err
	}

	fmt.Printf("merged %d files into %s\n", len(m.Files()), m.OutputFile())
	return nil
}
