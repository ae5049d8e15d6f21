package sqlite

import "errors"

var (
	// ErrBadMagic means the file does not start with the expected
	// signature. Nothing else about the file can be trusted, so the
	// whole scan is aborted.
	ErrBadMagic = errors.New("file signature mismatch")

	// ErrUnsupportedPageSize covers page sizes the scanner does not
	// handle: zero, non power-of-two values, and the special header
	// value 1 which the format defines as 65536-byte pages.
	ErrUnsupportedPageSize = errors.New("unsupported page size")

	// ErrTruncatedVarint means the input ended before the varint did.
	ErrTruncatedVarint = errors.New("truncated varint")

	// ErrOverflowPayload means a cell declares more payload bytes than
	// it holds inline, i.e. the record continues on an overflow page.
	// Overflow chains are not supported; such cells are skipped.
	ErrOverflowPayload = errors.New("payload spans overflow pages")
)
