package som

import (
	"fmt"

	"github.com/katalvlaran/somtsp"
)

var (
	// ErrNoCities is returned by Train for an empty city set, before any ring
	// is allocated.
	ErrNoCities = fmt.Errorf("som: at least one city is required: %w", somtsp.ErrInvalidInput)

	// ErrBadOptions is returned by New/Options.Validate for out-of-domain options.
	ErrBadOptions = fmt.Errorf("som: invalid options: %w", somtsp.ErrInvalidInput)
)
