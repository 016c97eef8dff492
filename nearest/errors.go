package nearest

import (
	"fmt"

	"github.com/katalvlaran/somtsp"
)

// ErrEmptyCandidates is returned by Closest for an empty candidate set.
// It matches somtsp.ErrInvalidInput under errors.Is.
var ErrEmptyCandidates = fmt.Errorf("nearest: empty candidate set: %w", somtsp.ErrInvalidInput)
