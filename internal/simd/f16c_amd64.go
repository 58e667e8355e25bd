//go:build amd64 && !noasm

package simd

func f16ToF32F16C(h uint16) float32

func f32ToF16F16C(f float32) uint16
