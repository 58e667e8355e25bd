package f16

// Decode converts a slice of Float16 values to float32.
// dst must have length >= len(src).
func Decode(dst []float32, src []Float16) {
	for i := range src {
		dst[i] = f16ToF32Impl(uint16(src[i]))
	}
}

// Encode converts a slice of float32 to Float16.
// dst must have length >= len(src).
func Encode(dst []Float16, src []float32) {
	for i := range src {
		dst[i] = Float16(f32ToF16Impl(src[i]))
	}
}

// DecodeBits converts raw binary16 bit patterns to float32.
// dst must have length >= len(src).
func DecodeBits(dst []float32, src []uint16) {
	for i := range src {
		dst[i] = f16ToF32Impl(src[i])
	}
}

// EncodeBits converts float32 values to raw binary16 bit patterns.
// dst must have length >= len(src).
func EncodeBits(dst []uint16, src []float32) {
	for i := range src {
		dst[i] = f32ToF16Impl(src[i])
	}
}
