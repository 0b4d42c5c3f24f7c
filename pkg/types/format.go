// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Format selects the result type requested from the parsing service.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// ParseFormat normalizes a format name case-insensitively. The second return
// value reports whether the name is one of the recognized formats.
func ParseFormat(s string) (Format, bool) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatMarkdown, FormatText, FormatJSON:
		return f, true
	default:
		return "", false
	}
}

// Ext returns the output file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatJSON:
		return ".json"
	default:
		return ".md"
	}
}
