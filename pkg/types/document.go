// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for pdf2x: output formats,
// extracted documents, and configuration structs.
package types

// Document is one unit of extracted content returned by the parsing
// service. The service may return several documents for a single file;
// the conversion driver uses only the first.
type Document struct {
	// Text is the extracted content in the requested format. For the json
	// format this is the raw response body, passed through unvalidated.
	Text string
}
