package serialize

import "errors"

var (
	// ErrVersionMismatch is returned when a blob declares a version
	// other than BlobVersion.
	ErrVersionMismatch = errors.New("serialize: unsupported blob version")

	// ErrTruncated is returned when a blob ends before a declared
	// size field says it should.
	ErrTruncated = errors.New("serialize: blob truncated")
)
