package ring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/somtsp"
)

var (
	// ErrInvalidSize is returned when a ring of fewer than one neuron is requested.
	ErrInvalidSize = fmt.Errorf("ring: size must be > 0: %w", somtsp.ErrInvalidInput)

	// ErrOutOfRange indicates a neuron index outside [0, Len()).
	ErrOutOfRange = errors.New("ring: index out of range")
)
