// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "errors"

// Error kinds for conversion failures. Each validation step and the
// external call map to exactly one kind; callers distinguish them with
// errors.Is. Every kind terminates the CLI with exit code 1.
var (
	// ErrConfiguration reports a missing service credential.
	ErrConfiguration = errors.New("credential missing")

	// ErrInvalidArgument reports a bad format, a non-PDF input path, or a
	// path that is not a regular file.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a nonexistent input file.
	ErrNotFound = errors.New("not found")

	// ErrPermission reports an unreadable input file or an unwritable
	// output directory.
	ErrPermission = errors.New("permission denied")

	// ErrEmptyResult reports that the service returned no documents.
	ErrEmptyResult = errors.New("no content extracted")

	// ErrExternalService wraps any failure surfaced by the parsing
	// service client.
	ErrExternalService = errors.New("parsing service error")
)
