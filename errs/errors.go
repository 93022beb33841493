// Package errs defines the sentinel errors shared across rlepack packages.
//
// All errors are plain sentinel values so callers can match them with
// errors.Is even when call sites wrap them with additional context.
package errs

import "errors"

var (
	// ErrUnsupportedMethod is returned when an encode is requested with a
	// method tag outside the defined set.
	ErrUnsupportedMethod = errors.New("unsupported RLE method")

	// ErrUnknownFormat is returned when a decode encounters a header byte
	// that does not match any known method tag.
	ErrUnknownFormat = errors.New("unknown container format")

	// ErrTruncatedInput is returned when a decode encounters an incomplete
	// trailing structure: a missing count byte, a dangling odd byte, or a
	// container shorter than its fixed header.
	ErrTruncatedInput = errors.New("truncated input")
)
