// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// conversionCall records one invocation of the shared conversion helper.
type conversionCall struct {
	input, output, format string
}

// stubConvert replaces runConvert with a recorder for the duration of the
// test and silences the logger.
func stubConvert(t *testing.T) *[]conversionCall {
	t.Helper()
	var calls []conversionCall

	orig := runConvert
	runConvert = func(ctx context.Context, inputPath, outputPath, format string) error {
		calls = append(calls, conversionCall{input: inputPath, output: outputPath, format: format})
		return nil
	}
	t.Cleanup(func() { runConvert = orig })

	// Flag values stick between Execute calls; start each test clean.
	require.NoError(t, convertCmd.Flags().Set("output", ""))
	require.NoError(t, convertCmd.Flags().Set("format", "markdown"))
	require.NoError(t, markdownCmd.Flags().Set("output", ""))

	origOut := log.Out
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(origOut) })

	return &calls
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestConvertDefaultFormat(t *testing.T) {
	calls := stubConvert(t)

	require.NoError(t, execute(t, "convert", "paper.pdf"))

	require.Len(t, *calls, 1)
	assert.Equal(t, conversionCall{input: "paper.pdf", output: "", format: "markdown"}, (*calls)[0])
}

func TestMarkdownMatchesConvert(t *testing.T) {
	calls := stubConvert(t)

	require.NoError(t, execute(t, "convert", "paper.pdf", "-o", "notes/out.md", "-f", "markdown"))
	require.NoError(t, execute(t, "markdown", "paper.pdf", "-o", "notes/out.md"))

	require.Len(t, *calls, 2)
	assert.Equal(t, (*calls)[0], (*calls)[1], "markdown must behave exactly like convert -f markdown")
}

func TestConvertFormatFlagPassedThrough(t *testing.T) {
	calls := stubConvert(t)

	require.NoError(t, execute(t, "convert", "paper.pdf", "--format", "json"))

	require.Len(t, *calls, 1)
	assert.Equal(t, "json", (*calls)[0].format)
}

func TestMarkdownHasNoFormatFlag(t *testing.T) {
	assert.Nil(t, markdownCmd.Flags().Lookup("format"))

	stubConvert(t)
	err := execute(t, "markdown", "paper.pdf", "-f", "text")
	require.Error(t, err)
}

func TestConvertRequiresExactlyOneArgument(t *testing.T) {
	stubConvert(t)

	assert.Error(t, execute(t, "convert"))
	assert.Error(t, execute(t, "convert", "a.pdf", "b.pdf"))
	assert.Error(t, execute(t, "markdown"))
}
