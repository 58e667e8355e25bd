package f16

import (
	"golang.org/x/exp/constraints"
)

// Float16 is an IEEE-754 binary16 value stored as its raw bit pattern.
//
// The zero value is positive zero. Float16 is a plain value type; every bit
// pattern is a valid encoding (normal, subnormal, zero, infinity or NaN).
type Float16 uint16

// FromBits returns the Float16 with the given bit pattern.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// Bits returns the raw bit pattern.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// FromFloat32 converts a float32 to Float16.
func FromFloat32(f float32) Float16 {
	return Float16(F32ToF16(f))
}

// FromFloat64 converts a float64 to Float16 by way of float32.
func FromFloat64(f float64) Float16 {
	return Float16(F32ToF16(float32(f)))
}

// FromInt converts an integer to Float16 by way of float32.
//
// Float16 itself satisfies constraints.Integer through its uint16 underlying
// type. A Float16 argument is returned unchanged instead of having its bit
// pattern read as an integer, so FromInt(One) is One, not 15360. The same
// holds for the integer operand of AddI, SubI, MulI, DivI and CompareI.
func FromInt[I constraints.Integer](i I) Float16 {
	if h, ok := any(i).(Float16); ok {
		return h
	}
	return Float16(F32ToF16(float32(i)))
}

// FromBool returns One for true and Zero for false.
func FromBool(b bool) Float16 {
	if b {
		return One
	}
	return Zero
}

// Float32 widens h to float32. The conversion is exact.
func (h Float16) Float32() float32 {
	return F16ToF32(uint16(h))
}

// Float64 widens h to float64. The conversion is exact.
func (h Float16) Float64() float64 {
	return float64(F16ToF32(uint16(h)))
}

// ToInt converts h to an integer type, truncating toward zero.
// As with Go's float-to-integer conversions, the result for NaN, infinities
// and out-of-range values is implementation-specific.
func ToInt[I constraints.Integer](h Float16) I {
	return I(h.Float32())
}

// Bool reports whether h is nonzero. Both zeros are false; NaN is true.
func (h Float16) Bool() bool {
	return uint16(h)&^signMask != 0
}

// IsInfOrNaN reports whether all exponent bits are set.
func (h Float16) IsInfOrNaN() bool {
	return uint16(h)&expMask == expMask
}

// IsNaN reports whether h is a NaN (exponent all ones, mantissa nonzero).
func (h Float16) IsNaN() bool {
	return uint16(h)&expMask == expMask && uint16(h)&fracMask != 0
}

// IsInf reports whether h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return uint16(h)&expMask == expMask && uint16(h)&fracMask == 0
}

// IsFinite reports whether h is neither infinite nor NaN.
func (h Float16) IsFinite() bool {
	return uint16(h)&expMask != expMask
}

// IsSubnormal reports whether h is a nonzero value without an implicit leading bit.
func (h Float16) IsSubnormal() bool {
	return uint16(h)&expMask == 0 && uint16(h)&fracMask != 0
}

// Signbit reports whether the sign bit is set (including -0 and negative NaNs).
func (h Float16) Signbit() bool {
	return uint16(h)&signMask != 0
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float16 {
	if sign < 0 {
		return NegativeInfinity
	}
	return Infinity
}

// NaN returns a quiet NaN.
func NaN() Float16 {
	return QuietNaN
}
