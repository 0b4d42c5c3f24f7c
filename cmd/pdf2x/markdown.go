// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdf2x/pkg/types"
)

// markdownCmd is a convenience wrapper around convert with the format
// pinned to markdown. It exists for muscle memory; the two commands share
// one driver.
var markdownCmd = &cobra.Command{
	Use:   "markdown <file.pdf>",
	Short: "Convert a PDF to Markdown",
	Long: `Markdown converts a PDF through the LlamaParse service, writing the
result next to the input with a .md extension unless --output is given.
Equivalent to "pdf2x convert -f markdown".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return runConvert(cmd.Context(), args[0], output, string(types.FormatMarkdown))
	},
}

func init() {
	markdownCmd.Flags().StringP("output", "o", "", "path for the output markdown file")

	rootCmd.AddCommand(markdownCmd)
}
