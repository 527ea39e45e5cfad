package bytesrepr

import "errors"

// Serialization errors.
//
// All errors are plain data: this layer never logs, retries, or recovers.
// Callers match with errors.Is.
var (
	// ErrFormatting is returned when decoding encounters an unknown tag
	// byte or a fixed-width field of the wrong length. It indicates
	// corrupt or adversarial input and is always fatal to the decode.
	ErrFormatting = errors.New("formatting error")

	// ErrEarlyEnd is returned when the input ends before a declared
	// length is satisfied.
	ErrEarlyEnd = errors.New("early end of stream")

	// ErrOutOfMemory is returned by the encode path when a
	// variable-length payload is large enough to overflow its 32-bit
	// length prefix. The check runs before any output is produced.
	ErrOutOfMemory = errors.New("out of memory")
)
