package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/somtsp"
)

var (
	// ErrEmpty is returned when an instance holds no cities.
	ErrEmpty = fmt.Errorf("dataset: instance has no cities: %w", somtsp.ErrInvalidInput)

	// ErrMalformed is returned (wrapped with the line number) for a line that
	// is not "x,y" with finite numbers.
	ErrMalformed = fmt.Errorf("dataset: could not parse city locations: %w", somtsp.ErrInvalidInput)

	// ErrBadInstance is returned for an instance identifier that is not a
	// positive integer.
	ErrBadInstance = fmt.Errorf("dataset: instance identifier must be a positive integer: %w", somtsp.ErrInvalidInput)

	// ErrNoInstance is returned when the requested instance file does not exist.
	ErrNoInstance = errors.New("dataset: the requested instance does not exist")
)
