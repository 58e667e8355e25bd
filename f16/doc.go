// Package f16 implements the IEEE-754 binary16 ("half-precision") floating-point type.
//
// # Layout
//
//	sign: 1 bit
//	exp:  5 bits (bias 15)
//	frac: 10 bits
//
// # Conversion
//
// Two conversion implementations exist and are cross-tested over the full
// 16-bit domain:
//
//   - Native: portable bit manipulation. float32 -> binary16 truncates the
//     mantissa toward zero.
//   - F16C: x86-64 hardware instructions, selected at init when the CPU
//     supports them. float32 -> binary16 rounds to nearest even.
//
// Both produce identical results for every binary16 value and its float32
// image. Set NUMKIT_F16=native to force the portable path at runtime, or
// build with -tags noasm to remove the hardware path entirely.
//
// # Arithmetic
//
// Arithmetic on two Float16 values promotes both to float32, computes, and
// demotes the result. Mixed arithmetic follows the built-in promotion rules:
//
//	f16.AddF(h, 1.5)   // float64: floating operands promote, result is the wider type
//	f16.AddI(h, 3)     // Float16: integer operands convert, result stays Float16
//
// Comparisons follow IEEE semantics (+0 == -0, NaN is unordered), never bit equality.
//
// Half-precision arithmetic is very lossy. Prefer computing in float32 and
// converting once at the end.
package f16
