// Package simd detects CPU support for hardware binary16 conversion and
// provides the x86-64 F16C path.
//
// # Supported Platforms
//
//   - x86-64 with AVX and F16C: VCVTPH2PS / VCVTPS2PH
//   - everything else: no hardware path; callers use the portable codec
//
// Runtime CPU feature detection selects the backend once at init.
// Build with -tags noasm to force the portable implementation, or set
// NUMKIT_F16=native at startup.
//
// The hardware narrowing conversion rounds to nearest even. Widening is exact
// on both paths.
package simd
