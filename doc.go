// Package numkit provides half-precision floats and compensated streaming
// statistics for Go.
//
// The building blocks live in subpackages:
//
//   - f16: the IEEE-754 binary16 Float16 type, its codec (portable and F16C),
//     arithmetic, limits and formatting
//   - accum: Accumulator[T] computing count, min, max and a Kahan-compensated sum
//   - halfbuf: binary16 block encoding with optional LZ4 or ZSTD compression
//
// This package ties them together behind a small facade with structured
// logging, metrics and error normalization.
//
// # Quick Start
//
//	ctx := context.Background()
//	s, err := numkit.Summarize(ctx, samples, numkit.WithWorkers(4))
//	fmt.Println(s.Count, s.Min, s.Max, s.Sum, s.Mean)
//
//	data, _ := numkit.EncodeHalf(ctx, floats, numkit.WithCompression(halfbuf.ZSTD))
//	back, _ := numkit.DecodeHalf(ctx, data)
//
// # Conversion Backend
//
// On amd64 CPUs with F16C the binary16 conversions run in hardware and round
// to nearest even. Elsewhere, or when built with -tags noasm, a portable
// implementation is used that truncates toward zero. Set NUMKIT_F16=native to
// force the portable path at startup.
//
// # Errors
//
// Facade errors match ErrInvalidInput or ErrCorrupt with errors.Is, and the
// underlying subpackage error stays reachable through errors.Is and errors.As.
package numkit
