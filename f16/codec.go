package f16

import (
	"math"

	"github.com/hupe1980/numkit/internal/simd"
)

const (
	signMask uint16 = 0x8000
	expMask  uint16 = 0x7C00
	fracMask uint16 = 0x03FF

	f32SignMask uint32 = 0x80000000
	f32ExpMask  uint32 = 0x7F800000
	f32FracMask uint32 = 0x007FFFFF

	expBias    = 15
	f32ExpBias = 127

	// quietNaNFrac is the mantissa given to a NaN whose payload truncated to zero.
	quietNaNFrac uint16 = 0x0200
)

var (
	f16ToF32Impl = F16ToF32Native
	f32ToF16Impl = F32ToF16Native
)

func init() {
	if simd.ActiveBackend() == simd.F16C {
		f16ToF32Impl = simd.F16ToF32
		f32ToF16Impl = simd.F32ToF16
	}
}

// Backend returns the name of the active conversion implementation
// ("native" or "f16c").
func Backend() string {
	return simd.ActiveBackend().String()
}

// F16ToF32 converts a binary16 bit pattern to float32 using the active backend.
// Every bit pattern has an exact float32 image.
func F16ToF32(h uint16) float32 {
	return f16ToF32Impl(h)
}

// F32ToF16 converts a float32 to a binary16 bit pattern using the active backend.
//
// The native backend truncates excess mantissa bits; the F16C backend rounds
// to nearest even. Values exactly representable in binary16 convert
// identically on both.
func F32ToF16(f float32) uint16 {
	return f32ToF16Impl(f)
}

// F16ToF32Native converts a binary16 bit pattern to float32 with portable bit manipulation.
func F16ToF32Native(h uint16) float32 {
	sign := uint32(h&signMask) << 16
	exp16 := (h & expMask) >> 10
	frac16 := h & fracMask

	exp32 := uint32(exp16) + (f32ExpBias - expBias)
	frac32 := uint32(frac16)

	switch {
	case exp16 == 0 && frac16 != 0:
		// Subnormal: shift until the implicit bit (bit 10) appears, then drop it.
		// Half subnormals have an exponent of -14.
		var offset uint32
		for frac32&0x0400 == 0 {
			offset++
			frac32 <<= 1
		}
		frac32 &= uint32(fracMask)
		exp32 = 113 - offset // 113 = 127 - 14
	case exp16 == 0:
		// +-0
		exp32 = 0
	case exp16 == 0x1F:
		// +-Inf and NaN; a NaN keeps its (nonzero) mantissa.
		exp32 = 0xFF
	}

	return math.Float32frombits(sign | exp32<<23 | frac32<<13)
}

// F32ToF16Native converts a float32 to a binary16 bit pattern with portable bit manipulation.
//
// Rounding mode: truncation toward zero.
func F32ToF16Native(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits & f32SignMask) >> 16)
	exp32 := (bits & f32ExpMask) >> 23
	frac32 := bits & f32FracMask

	// Re-bias exponent from float32 (127) to float16 (15).
	exp16 := int32(exp32) - f32ExpBias + expBias
	switch exp32 {
	case 0xFF:
		exp16 = 0x1F
	case 0:
		exp16 = 0
	}

	frac16 := uint16(frac32 >> 13)

	switch {
	case exp32 == 0xFF && frac32 != 0 && frac16 == 0:
		// NaN whose payload lived in the discarded bits.
		frac16 = quietNaNFrac
	case exp32 == 0:
		// Zero, and float32 subnormals which are far below the binary16 range.
		frac16 = 0
	case exp16 >= 0x1F && exp32 != 0xFF:
		// Overflow -> Inf
		exp16 = 0x1F
		frac16 = 0
	case exp16 <= 0:
		// Underflow -> subnormal or zero. Make the implicit bit explicit and
		// shift it into the subnormal range; shifts past 10 bits leave zero.
		frac16 = uint16((0x0400 | uint32(frac16)) >> uint32(1-exp16))
		exp16 = 0
	}

	return sign | uint16(exp16)<<10 | frac16
}
