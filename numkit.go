package numkit

import (
	"context"
	"time"

	"github.com/hupe1980/numkit/accum"
	"github.com/hupe1980/numkit/f16"
	"github.com/hupe1980/numkit/halfbuf"
)

// Summary holds the statistics of a sample set.
// For an empty input every field is zero.
type Summary[T accum.Value] struct {
	Count uint64
	Min   T
	Max   T
	Sum   T
	Mean  float64
}

// Summarize computes count, min, max, a compensated sum and the mean of samples.
//
// Unlike accum.Accumulator.Add, Summarize validates its input: a NaN or
// infinite sample yields an *ErrNonFiniteSample matching ErrInvalidInput.
func Summarize[T accum.Value](ctx context.Context, samples []T, optFns ...Option) (Summary[T], error) {
	o := applyOptions(optFns)
	start := time.Now()

	acc, err := summarize(ctx, samples, o.workers)
	err = translateError(err)

	elapsed := time.Since(start)
	o.metricsCollector.RecordSummarize(len(samples), elapsed, err)
	o.logger.LogSummarize(ctx, len(samples), o.workers, elapsed, err)

	if err != nil {
		return Summary[T]{}, err
	}
	return Summary[T]{
		Count: acc.Count(),
		Min:   acc.Min(),
		Max:   acc.Max(),
		Sum:   acc.Sum(),
		Mean:  acc.Mean(),
	}, nil
}

func summarize[T accum.Value](ctx context.Context, samples []T, workers int) (*accum.Accumulator[T], error) {
	if workers != 1 {
		return accum.Parallel(ctx, samples, workers)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := accum.Validate(samples); err != nil {
		return nil, err
	}
	return accum.New(samples...), nil
}

// EncodeHalf converts values to binary16 and serializes them as halfbuf blocks.
func EncodeHalf(ctx context.Context, values []float32, optFns ...Option) ([]byte, error) {
	o := applyOptions(optFns)
	start := time.Now()

	data, err := halfbuf.EncodeFloat32(values, o.compression)
	err = translateError(err)

	o.metricsCollector.RecordEncode(len(values), len(data), time.Since(start), err)
	o.logger.LogEncode(ctx, len(values), len(data), o.compression, err)

	if err != nil {
		return nil, err
	}
	return data, nil
}

// DecodeHalf parses halfbuf blocks and widens every value to float32.
func DecodeHalf(ctx context.Context, data []byte, optFns ...Option) ([]float32, error) {
	o := applyOptions(optFns)
	start := time.Now()

	values, err := halfbuf.DecodeFloat32(data)
	err = translateError(err)

	o.metricsCollector.RecordDecode(len(data), len(values), time.Since(start), err)
	o.logger.LogDecode(ctx, len(data), len(values), err)

	if err != nil {
		return nil, err
	}
	return values, nil
}

// Backend reports the active binary16 conversion backend ("native" or "f16c").
func Backend() string {
	return f16.Backend()
}
