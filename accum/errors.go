package accum

import (
	"errors"
	"fmt"
)

// ErrNonFinite is returned by the checked paths when a floating-point sample is NaN or infinite.
var ErrNonFinite = errors.New("accum: non-finite sample")

// NonFiniteError reports the position of the offending sample.
type NonFiniteError struct {
	Index int
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("accum: non-finite sample at index %d", e.Index)
}

// Unwrap returns ErrNonFinite.
func (e *NonFiniteError) Unwrap() error {
	return ErrNonFinite
}
