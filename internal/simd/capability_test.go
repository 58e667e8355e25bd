package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
		ok   bool
	}{
		{"native", Native, true},
		{"generic", Native, true},
		{" F16C ", F16C, true},
		{"avx512", Native, false},
		{"", Native, false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseBackend(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "native", Native.String())
	assert.Equal(t, "f16c", F16C.String())
	assert.Equal(t, "unknown", Backend(42).String())
}

func TestActiveBackendIsAvailable(t *testing.T) {
	assert.True(t, isBackendAvailable(ActiveBackend()))
	assert.True(t, isBackendAvailable(Native))
	assert.False(t, isBackendAvailable(Backend(42)))
	if !HasF16C() {
		assert.Equal(t, Native, ActiveBackend())
	}
}

func TestF16C_KnownValues(t *testing.T) {
	if !HasF16C() {
		t.Skip("F16C not available")
	}

	tests := []struct {
		name string
		bits uint16
		want float32
	}{
		{"+0", 0x0000, 0},
		{"+1", 0x3C00, 1},
		{"-2", 0xC000, -2},
		{"max", 0x7BFF, 65504},
		{"min subnormal", 0x0001, float32(math.Ldexp(1, -24))},
		{"+Inf", 0x7C00, float32(math.Inf(1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, F16ToF32(tc.bits))
			assert.Equal(t, tc.bits, F32ToF16(tc.want))
		})
	}

	require.True(t, math.IsNaN(float64(F16ToF32(0x7E00))))
}

func TestF16C_RoundingTiesToEven(t *testing.T) {
	if !HasF16C() {
		t.Skip("F16C not available")
	}

	// Around 1.0 in binary16: step = 2^-10.
	base := float32(1.0)
	step := float32(math.Ldexp(1, -10))

	// Halfway between 1.0 (even mantissa) and next representable; tie -> even.
	assert.Equal(t, uint16(0x3C00), F32ToF16(base+step/2))

	// Halfway between (1.0+step) and (1.0+2*step). Lower is odd mantissa -> rounds up.
	assert.Equal(t, uint16(0x3C02), F32ToF16(base+step+step/2))
}
