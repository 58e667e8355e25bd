package f16

import "golang.org/x/exp/constraints"

// Mixed-type arithmetic is split by the other operand's category.
//
// Floating operands promote: h is widened to F and the result has type F,
// exactly as a built-in float32 or float64 operand would behave. The
// promoting form is always h OP f; for f OP h write Promote[F](h) directly.
//
// Integer operands convert: the integer becomes a Float16 first and the
// result stays Float16.

// Promote widens h to the floating type F.
func Promote[F constraints.Float](h Float16) F {
	return F(h.Float32())
}

// AddF returns h + f in F.
func AddF[F constraints.Float](h Float16, f F) F {
	return Promote[F](h) + f
}

// SubF returns h - f in F.
func SubF[F constraints.Float](h Float16, f F) F {
	return Promote[F](h) - f
}

// MulF returns h * f in F.
func MulF[F constraints.Float](h Float16, f F) F {
	return Promote[F](h) * f
}

// DivF returns h / f in F.
func DivF[F constraints.Float](h Float16, f F) F {
	return Promote[F](h) / f
}

// CompareF compares h with f in F. ordered is false if either is NaN.
func CompareF[F constraints.Float](h Float16, f F) (cmp int, ordered bool) {
	return compare(Promote[F](h), f)
}

// AddI returns h + Float16(i).
func AddI[I constraints.Integer](h Float16, i I) Float16 {
	return h.Add(FromInt(i))
}

// SubI returns h - Float16(i).
func SubI[I constraints.Integer](h Float16, i I) Float16 {
	return h.Sub(FromInt(i))
}

// MulI returns h * Float16(i).
func MulI[I constraints.Integer](h Float16, i I) Float16 {
	return h.Mul(FromInt(i))
}

// DivI returns h / Float16(i).
func DivI[I constraints.Integer](h Float16, i I) Float16 {
	return h.Div(FromInt(i))
}

// CompareI compares h with Float16(i). ordered is false if h is NaN.
func CompareI[I constraints.Integer](h Float16, i I) (cmp int, ordered bool) {
	return h.Compare(FromInt(i))
}
