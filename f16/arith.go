package f16

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Add returns h + o, computed in float32 and demoted to Float16.
func (h Float16) Add(o Float16) Float16 {
	return FromFloat32(h.Float32() + o.Float32())
}

// Sub returns h - o, computed in float32 and demoted to Float16.
func (h Float16) Sub(o Float16) Float16 {
	return FromFloat32(h.Float32() - o.Float32())
}

// Mul returns h * o, computed in float32 and demoted to Float16.
func (h Float16) Mul(o Float16) Float16 {
	return FromFloat32(h.Float32() * o.Float32())
}

// Div returns h / o, computed in float32 and demoted to Float16.
func (h Float16) Div(o Float16) Float16 {
	return FromFloat32(h.Float32() / o.Float32())
}

// Neg returns -h by flipping the sign bit.
func (h Float16) Neg() Float16 {
	return h ^ Float16(signMask)
}

// Abs returns h with a negative value's sign flipped. -0 and NaNs are returned unchanged.
func (h Float16) Abs() Float16 {
	if h.Float32() < 0 {
		return h.Neg()
	}
	return h
}

// Inc returns h + 1.
func (h Float16) Inc() Float16 {
	return FromFloat32(h.Float32() + 1)
}

// Dec returns h - 1.
func (h Float16) Dec() Float16 {
	return FromFloat32(h.Float32() - 1)
}

// FMA returns a*b + c with the product and sum computed by a single
// float64 fused multiply-add before demotion, avoiding the double rounding
// of two separate Float16 operations.
func FMA(a, b, c Float16) Float16 {
	return FromFloat64(math.FMA(a.Float64(), b.Float64(), c.Float64()))
}

// Equal reports h == o under IEEE semantics (+0 == -0; NaN equals nothing).
func (h Float16) Equal(o Float16) bool {
	return h.Float32() == o.Float32()
}

// NotEqual reports h != o under IEEE semantics.
func (h Float16) NotEqual(o Float16) bool {
	return h.Float32() != o.Float32()
}

// Less reports h < o.
func (h Float16) Less(o Float16) bool {
	return h.Float32() < o.Float32()
}

// LessEqual reports h <= o.
func (h Float16) LessEqual(o Float16) bool {
	return h.Float32() <= o.Float32()
}

// Greater reports h > o.
func (h Float16) Greater(o Float16) bool {
	return h.Float32() > o.Float32()
}

// GreaterEqual reports h >= o.
func (h Float16) GreaterEqual(o Float16) bool {
	return h.Float32() >= o.Float32()
}

// Compare returns -1, 0 or +1 as h is less than, equal to or greater than o.
// ordered is false if either operand is NaN, in which case cmp is 0.
func (h Float16) Compare(o Float16) (cmp int, ordered bool) {
	return compare(h.Float32(), o.Float32())
}

func compare[F constraints.Float](a, b F) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}
