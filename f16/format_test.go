package f16

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		h    Float16
		want string
	}{
		{Zero, "0"},
		{MinusZero, "-0"},
		{One, "1"},
		{ThreeOverTwo, "1.5"},
		{MaxValue, "65504"},
		{Infinity, "+Inf"},
		{NegativeInfinity, "-Inf"},
		{QuietNaN, "NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.h.String())
		})
	}
}

func TestFormat(t *testing.T) {
	h := FromFloat32(1.5)
	assert.Equal(t, "1.5", fmt.Sprint(h))
	assert.Equal(t, "1.5", fmt.Sprintf("%v", h))
	assert.Equal(t, "1.5", fmt.Sprintf("%s", h))
	assert.Equal(t, "1.500", fmt.Sprintf("%.3f", h))
	assert.Equal(t, "  1.50", fmt.Sprintf("%6.2f", h))
	assert.Equal(t, "1.5e+00", fmt.Sprintf("%.1e", h))
	assert.Equal(t, "[1 2]", fmt.Sprint([]Float16{One, Two}))
}

func TestParse(t *testing.T) {
	h, err := Parse("2.5")
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), h.Float32())

	h, err = Parse("-Inf")
	require.NoError(t, err)
	assert.Equal(t, NegativeInfinity, h)

	h, err = Parse("NaN")
	require.NoError(t, err)
	assert.True(t, h.IsNaN())

	h, err = Parse("1e10")
	require.NoError(t, err)
	assert.Equal(t, Infinity, h)

	_, err = Parse("one")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var a, b Float16
	n, err := fmt.Sscan("3 -0.25", &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, Three, a)
	assert.Equal(t, float32(-0.25), b.Float32())

	_, err = fmt.Sscan("x", &a)
	assert.Error(t, err)
}

func TestText_RoundTrip(t *testing.T) {
	for _, h := range []Float16{Zero, MinusZero, One, MaxValue, Lowest, DenormMin, Infinity, NegativeInfinity} {
		text, err := h.MarshalText()
		require.NoError(t, err)

		var got Float16
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, h, got, "text=%s", text)
	}
}

func TestJSON(t *testing.T) {
	type sample struct {
		Value Float16   `json:"value"`
		List  []Float16 `json:"list"`
	}

	in := sample{Value: ThreeOverTwo, List: []Float16{One, MinusTwo}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"1.5","list":["1","-2"]}`, string(data))

	var out sample
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestBinary(t *testing.T) {
	data, err := ThreeOverTwo.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x3E}, data)

	var h Float16
	require.NoError(t, h.UnmarshalBinary(data))
	assert.Equal(t, ThreeOverTwo, h)

	assert.ErrorIs(t, h.UnmarshalBinary([]byte{1}), ErrInvalidLength)
	assert.ErrorIs(t, h.UnmarshalBinary([]byte{1, 2, 3}), ErrInvalidLength)
}
