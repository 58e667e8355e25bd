//go:build !amd64 || noasm

package simd

func f16ToF32F16C(uint16) float32 {
	panic("simd: F16C conversion is not available on this platform")
}

func f32ToF16F16C(float32) uint16 {
	panic("simd: F16C conversion is not available on this platform")
}
