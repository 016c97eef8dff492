package somtsp

import "errors"

// Error kinds shared by all subpackages. Package-specific sentinels wrap one
// of these, so callers can match either the precise cause or the kind:
//
//	errors.Is(err, som.ErrNoCities)      // precise
//	errors.Is(err, somtsp.ErrInvalidInput) // kind
var (
	// ErrInvalidInput marks caller-supplied data that cannot be processed
	// (empty city set, empty candidate set, bad options).
	ErrInvalidInput = errors.New("somtsp: invalid input")

	// ErrDecodeFailure marks a ring that cannot be read back as a tour.
	ErrDecodeFailure = errors.New("somtsp: decode failure")
)
