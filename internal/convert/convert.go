// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements the PDF conversion driver: fail-fast input
// validation, a single blocking call to the hosted parsing service, and
// writing the extracted text to a local file.
package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdf2x/pkg/types"
)

// Parser submits a PDF to the hosted parsing service and returns the
// extracted documents. Implemented by llamaparse.Client.
type Parser interface {
	Parse(ctx context.Context, pdfPath string, format types.Format) ([]types.Document, error)
}

// Driver runs one conversion end to end. It holds no state between
// invocations; each Convert call is independent.
type Driver struct {
	Parser Parser
	Log    *logrus.Logger
}

// Convert validates inputPath, submits it to the parsing service, and
// writes the first returned document's text to outputPath, overwriting any
// existing file. When outputPath is empty the input path with the format's
// extension is used. The credential and format checks run before any
// filesystem or network access, so a misconfigured invocation never
// touches the disk or the service.
//
// Validation failures return one of the sentinel kinds in this package.
// Errors from the Parser are wrapped in ErrExternalService at this
// boundary and nowhere else.
func (d *Driver) Convert(ctx context.Context, cfg types.ParserConfig, inputPath, outputPath, format string) error {
	if cfg.APIKey == "" {
		return fmt.Errorf("%w: LLAMA_CLOUD_API_KEY is not set", ErrConfiguration)
	}

	resultType, ok := types.ParseFormat(format)
	if !ok {
		return fmt.Errorf("%w: unsupported format %q (use markdown, text, or json)", ErrInvalidArgument, format)
	}

	pdfPath, err := filepath.Abs(inputPath)
	if err != nil {
		return fmt.Errorf("%w: resolving %s: %v", ErrInvalidArgument, inputPath, err)
	}

	if !strings.EqualFold(filepath.Ext(pdfPath), ".pdf") {
		return fmt.Errorf("%w: input file must be a PDF: %s", ErrInvalidArgument, pdfPath)
	}

	info, err := os.Stat(pdfPath)
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: PDF file not found: %s", ErrNotFound, pdfPath)
	case os.IsPermission(err):
		return fmt.Errorf("%w: cannot stat %s", ErrPermission, pdfPath)
	case err != nil:
		return fmt.Errorf("stat %s: %w", pdfPath, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: path exists but is not a regular file: %s", ErrInvalidArgument, pdfPath)
	}

	// Readability probe, so a permission problem fails here rather than
	// midway through the upload.
	probe, err := os.Open(pdfPath)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: no read permission for file: %s", ErrPermission, pdfPath)
		}
		return fmt.Errorf("opening %s: %w", pdfPath, err)
	}
	probe.Close()

	d.Log.WithFields(logrus.Fields{"file": pdfPath, "format": string(resultType)}).Info("processing PDF file")

	docs, err := d.Parser.Parse(ctx, pdfPath, resultType)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExternalService, err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w from the PDF", ErrEmptyResult)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + resultType.Ext()
	} else if outPath, err = filepath.Abs(outPath); err != nil {
		return fmt.Errorf("%w: resolving %s: %v", ErrInvalidArgument, outputPath, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: cannot create directory: %s", ErrPermission, filepath.Dir(outPath))
		}
		return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
	}

	// The write is not atomic: a failure midway can leave a previous
	// output file partially overwritten.
	if err := os.WriteFile(outPath, []byte(docs[0].Text), 0o644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("%w: no write permission for directory: %s", ErrPermission, filepath.Dir(outPath))
		}
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	d.Log.WithField("output", outPath).Infof("successfully converted PDF to %s", strings.ToUpper(string(resultType)))
	return nil
}
