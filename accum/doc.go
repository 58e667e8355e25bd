// Package accum computes streaming summary statistics (count, min, max, sum)
// over numeric samples.
//
// An Accumulator[T] picks its summation strategy from T once, when the first
// sample arrives:
//
//   - integer types sum into a widened int64 or uint64
//   - float32 and f16.Float16 samples are Kahan-summed in float32
//   - float64 samples are Kahan-summed in float64
//
// Min and max use plain per-sample comparison in every case; compensation
// applies to the sum only.
//
// # Usage
//
//	var acc accum.Accumulator[float32]
//	acc.Add(1).Add(2.5)
//	acc.AddAll(samples)
//	fmt.Println(acc.Count(), acc.Min(), acc.Max(), acc.Sum())
//
// # Finite samples
//
// Floating-point samples must be finite. Add panics on NaN or ±Inf unless the
// package is built with the numkit_noassert tag, in which case the values
// propagate into the sum under IEEE rules. Parallel checks every sample and
// returns ErrNonFinite instead of panicking.
//
// # Concurrency
//
// An Accumulator is not safe for concurrent use. Use one per goroutine and
// combine them with Merge, or call Parallel.
package accum
