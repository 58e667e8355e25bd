package numkit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/numkit/accum"
	"github.com/hupe1980/numkit/halfbuf"
)

var (
	// ErrInvalidInput is returned when arguments cannot be processed, for
	// example a NaN sample or an unknown compression.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorrupt is returned when encoded data is truncated or inconsistent.
	ErrCorrupt = errors.New("corrupt data")
)

// ErrNonFiniteSample indicates a NaN or infinite sample passed to Summarize.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrNonFiniteSample struct {
	Index int
	cause error
}

func (e *ErrNonFiniteSample) Error() string {
	return fmt.Sprintf("non-finite sample at index %d", e.Index)
}

func (e *ErrNonFiniteSample) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var nf *accum.NonFiniteError
	if errors.As(err, &nf) {
		return &ErrNonFiniteSample{Index: nf.Index, cause: fmt.Errorf("%w: %w", ErrInvalidInput, err)}
	}
	if errors.Is(err, halfbuf.ErrUnknownCompression) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, halfbuf.ErrShortBlock) || errors.Is(err, halfbuf.ErrCorruptBlock) {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return err
}
