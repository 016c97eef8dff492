package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/somtsp"
)

var (
	// ErrNoCities is returned by Decode for an empty city set.
	ErrNoCities = fmt.Errorf("tour: at least one city is required: %w", somtsp.ErrInvalidInput)

	// ErrRingTooSmall is returned by Decode when the ring has fewer neurons
	// than there are cities.
	ErrRingTooSmall = fmt.Errorf("tour: ring has fewer neurons than cities: %w", somtsp.ErrDecodeFailure)

	// ErrUnresolved is returned by Decode when every neuron already qualifies
	// and the passes still do not produce a permutation.
	ErrUnresolved = fmt.Errorf("tour: ring does not resolve to a tour: %w", somtsp.ErrDecodeFailure)

	// ErrNotPermutation is returned by path validators.
	ErrNotPermutation = errors.New("tour: path is not a permutation")
)
