package accum

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// minChunkSize is the smallest slice handed to one goroutine.
	minChunkSize = 4096

	// cancelCheckInterval is how often a worker polls its context.
	cancelCheckInterval = 1024
)

// Validate returns a *NonFiniteError for the first NaN or infinite sample,
// or nil if every sample may be passed to Add.
func Validate[T Value](samples []T) error {
	k := kindOf[T]()
	if !k.floating() {
		return nil
	}
	for i, s := range samples {
		if !isFinite(k, s) {
			return &NonFiniteError{Index: i}
		}
	}
	return nil
}

// Parallel accumulates samples using up to workers goroutines and merges the
// partial results in slice order. workers <= 0 means runtime.GOMAXPROCS(0).
//
// Unlike Add, Parallel does not panic on non-finite samples: it returns an
// error wrapping ErrNonFinite. It also stops early when ctx is canceled.
//
// Integer results are identical to sequential accumulation. Floating-point
// sums may differ from a sequential pass in the last few bits because partial
// sums are combined in a different order.
func Parallel[T Value](ctx context.Context, samples []T, workers int) (*Accumulator[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunks := (len(samples) + minChunkSize - 1) / minChunkSize
	workers = max(1, min(workers, chunks))
	size := (len(samples) + workers - 1) / workers

	parts := make([]Accumulator[T], workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * size
		hi := min(lo+size, len(samples))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			return accumulateChunk(gctx, &parts[w], samples[lo:hi], lo)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Accumulator[T]{}
	for i := range parts {
		out.Merge(&parts[i])
	}
	return out, nil
}

func accumulateChunk[T Value](ctx context.Context, a *Accumulator[T], chunk []T, offset int) error {
	k := kindOf[T]()
	for i, s := range chunk {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if k.floating() && !isFinite(k, s) {
			return &NonFiniteError{Index: offset + i}
		}
		a.Add(s)
	}
	return nil
}
