// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2x/internal/convert"
	"github.com/pdiddy/pdf2x/internal/llamaparse"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.pdf>",
	Short: "Convert a PDF to Markdown, plain text, or JSON",
	Long: `Convert uploads a PDF to the LlamaParse service and writes whatever the
service returns for the requested format. The output path defaults to the
input path with the extension replaced by .md, .txt, or .json.

The json format requests JSON-shaped output from the service; the response
is written as-is and is not validated locally.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		return runConvert(cmd.Context(), args[0], output, format)
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "path for the output file")
	convertCmd.Flags().StringP("format", "f", "markdown", "output format: markdown, text, or json")

	rootCmd.AddCommand(convertCmd)
}

// runConvert builds the parser client and driver and runs one conversion.
// The markdown subcommand reuses it with the format pinned. Declared as a
// var so command tests can substitute a recorder.
var runConvert = func(ctx context.Context, inputPath, outputPath, format string) error {
	cfg := parserConfig()
	driver := &convert.Driver{
		Parser: llamaparse.New(cfg, log),
		Log:    log,
	}
	return driver.Convert(ctx, cfg, inputPath, outputPath, format)
}
