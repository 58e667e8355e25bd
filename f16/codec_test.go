package f16

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/hupe1980/numkit/internal/simd"
	"github.com/hupe1980/numkit/testutil"
)

func isNaN16(h uint16) bool {
	return h&expMask == expMask && h&fracMask != 0
}

func isNaN32(f float32) bool {
	return f != f
}

func TestF16ToF32Native_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want float32
	}{
		{"+0", 0x0000, 0},
		{"-0", 0x8000, float32(math.Copysign(0, -1))},
		{"+1", 0x3C00, 1},
		{"-1", 0xBC00, -1},
		{"+2", 0x4000, 2},
		{"1.5", 0x3E00, 1.5},
		{"max", 0x7BFF, 65504},
		{"lowest", 0xFBFF, -65504},
		{"min normal", 0x0400, float32(math.Ldexp(1, -14))},
		{"min subnormal", 0x0001, float32(math.Ldexp(1, -24))},
		{"max subnormal", 0x03FF, float32(math.Ldexp(1023, -24))},
		{"+Inf", 0x7C00, float32(math.Inf(1))},
		{"-Inf", 0xFC00, float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := F16ToF32Native(tt.in)
			assert.Equal(t, math.Float32bits(tt.want), math.Float32bits(got),
				"got=%v want=%v", got, tt.want)
		})
	}
}

func TestF16ToF32Native_NaN(t *testing.T) {
	for _, bits := range []uint16{0x7E00, 0x7C01, 0xFE01, 0xFC01, 0x7FFF} {
		got := F16ToF32Native(bits)
		require.True(t, isNaN32(got), "bits=%04x got=%v", bits, got)
		// The mantissa is carried through unchanged.
		assert.Equal(t, uint32(bits&fracMask)<<13, math.Float32bits(got)&f32FracMask)
		assert.Equal(t, bits&signMask != 0, math.Signbit(float64(got)))
	}
}

func TestF32ToF16Native_ZeroSigns(t *testing.T) {
	assert.Equal(t, uint16(0x0000), F32ToF16Native(0))
	assert.Equal(t, uint16(0x8000), F32ToF16Native(float32(math.Copysign(0, -1))))

	// float32 subnormals are far below the binary16 range.
	assert.Equal(t, uint16(0x0000), F32ToF16Native(math.Float32frombits(0x00000001)))
	assert.Equal(t, uint16(0x8000), F32ToF16Native(math.Float32frombits(0x807FFFFF)))
}

func TestF32ToF16Native_InfNaN(t *testing.T) {
	assert.Equal(t, uint16(0x7C00), F32ToF16Native(float32(math.Inf(1))))
	assert.Equal(t, uint16(0xFC00), F32ToF16Native(float32(math.Inf(-1))))

	tests := []struct {
		name string
		in   uint32
		want uint16
	}{
		// Payload entirely in the discarded low bits: forced to the quiet pattern.
		{"signaling low payload", 0x7F800001, 0x7E00},
		{"negative low payload", 0xFF800001, 0xFE00},
		{"canonical quiet", 0x7FC00000, 0x7E00},
		// Payload reaching the kept bits survives truncation.
		{"kept payload", 0x7FC02000, 0x7E01},
		{"signaling kept payload", 0x7F802000, 0x7C01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := F32ToF16Native(math.Float32frombits(tt.in))
			assert.Equal(t, tt.want, got, "got=%04x", got)
			assert.True(t, isNaN16(got))
		})
	}
}

func TestF32ToF16Native_Overflow(t *testing.T) {
	for _, f := range []float32{65536, 131072, 1e6, math.MaxFloat32} {
		assert.Equal(t, uint16(0x7C00), F32ToF16Native(f), "f=%g", f)
		assert.Equal(t, uint16(0xFC00), F32ToF16Native(-f), "f=%g", -f)
	}

	// Below 65536 truncation keeps the largest finite value.
	assert.Equal(t, uint16(0x7BFF), F32ToF16Native(65535))
}

func TestF32ToF16Native_Underflow(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint16
	}{
		{"2^-15", float32(math.Ldexp(1, -15)), 0x0200},
		{"1.5*2^-15", float32(math.Ldexp(1.5, -15)), 0x0300},
		{"2^-20", float32(math.Ldexp(1, -20)), 0x0010},
		{"-2^-20", float32(-math.Ldexp(1, -20)), 0x8010},
		{"2^-24", float32(math.Ldexp(1, -24)), 0x0001},
		{"2^-25", float32(math.Ldexp(1, -25)), 0x0000},
		{"2^-40", float32(math.Ldexp(1, -40)), 0x0000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, F32ToF16Native(tt.in))
		})
	}
}

func TestF32ToF16Native_Truncates(t *testing.T) {
	// Around 1.0 in binary16: step = 2^-10.
	base := float32(1.0)
	step := float32(math.Ldexp(1, -10))

	assert.Equal(t, uint16(0x3C00), F32ToF16Native(base+step/2))
	assert.Equal(t, uint16(0x3C01), F32ToF16Native(base+step+step/2))
	assert.Equal(t, uint16(0x3C01), F32ToF16Native(base+step*1.99))
	assert.Equal(t, uint16(0xBC01), F32ToF16Native(-(base + step*1.99)))
}

func TestF32ToF16Native_TruncationErrorBound(t *testing.T) {
	rng := testutil.NewRNG(7)
	values := make([]float32, 10000)
	rng.FillUniformRange(values, float32(math.Ldexp(1, -14)), 60000)

	// Normal binary16 keeps 10 of the 23 float32 fraction bits, so truncation
	// moves a value down by fewer than 2^13 float32 steps.
	for _, f := range values {
		back := F16ToF32Native(F32ToF16Native(f))
		require.LessOrEqual(t, back, f)
		require.Less(t, testutil.ULPDistance32(f, back), uint32(1<<13), "f=%v back=%v", f, back)
	}
}

func TestNative_RoundTripAllBits(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		back := F32ToF16Native(F16ToF32Native(h))
		if isNaN16(h) {
			require.True(t, isNaN16(back), "h=%04x back=%04x", h, back)
			require.Equal(t, h&signMask, back&signMask)
			continue
		}
		require.Equal(t, h, back, "h=%04x back=%04x", h, back)
	}
}

func TestDispatch_RoundTripAllBits(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		back := F32ToF16(F16ToF32(h))
		if isNaN16(h) {
			require.True(t, isNaN16(back), "h=%04x back=%04x", h, back)
			continue
		}
		require.Equal(t, h, back, "h=%04x back=%04x", h, back)
	}
}

func TestNative_MatchesF16C(t *testing.T) {
	if !simd.HasF16C() {
		t.Skip("F16C not available")
	}

	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		native := F16ToF32Native(h)
		hw := simd.F16ToF32(h)

		if isNaN16(h) {
			// Hardware quiets signaling NaNs; only NaN-ness is guaranteed.
			require.True(t, isNaN32(native))
			require.True(t, isNaN32(hw))
			require.True(t, isNaN16(simd.F32ToF16(native)))
			continue
		}
		require.Equal(t, math.Float32bits(native), math.Float32bits(hw), "h=%04x", h)
		require.Equal(t, F32ToF16Native(native), simd.F32ToF16(native), "h=%04x", h)
	}
}

func TestNative_MatchesReference(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		h := uint16(i)
		if isNaN16(h) {
			continue
		}
		ref := float16.Frombits(h).Float32()
		got := F16ToF32Native(h)
		require.Equal(t, math.Float32bits(ref), math.Float32bits(got), "h=%04x", h)
		require.Equal(t, float16.Fromfloat32(got).Bits(), F32ToF16Native(got), "h=%04x", h)
	}
}

func TestF16C_MatchesReferenceRounding(t *testing.T) {
	if !simd.HasF16C() {
		t.Skip("F16C not available")
	}

	rng := testutil.NewRNG(4711)
	for i := 0; i < 1<<16; i++ {
		f := math.Float32frombits(uint32(rng.Uint64()))
		if isNaN32(f) {
			continue
		}
		require.Equal(t, float16.Fromfloat32(f).Bits(), simd.F32ToF16(f), "f=%g bits=%08x", f, math.Float32bits(f))
	}
}

func TestBackend(t *testing.T) {
	assert.Equal(t, simd.ActiveBackend().String(), Backend())
	assert.Contains(t, []string{"native", "f16c"}, Backend())
}

func BenchmarkF32ToF16Native(b *testing.B) {
	var sink uint16
	f := float32(3.14159)
	for b.Loop() {
		sink = F32ToF16Native(f)
	}
	_ = sink
}

func BenchmarkF32ToF16(b *testing.B) {
	var sink uint16
	f := float32(3.14159)
	for b.Loop() {
		sink = F32ToF16(f)
	}
	_ = sink
}

func BenchmarkF16ToF32Native(b *testing.B) {
	var sink float32
	for b.Loop() {
		sink = F16ToF32Native(0x0123)
	}
	_ = sink
}

func BenchmarkF16ToF32(b *testing.B) {
	var sink float32
	for b.Loop() {
		sink = F16ToF32(0x0123)
	}
	_ = sink
}
