package f16

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidLength is returned when binary input is not exactly two bytes.
var ErrInvalidLength = errors.New("f16: binary value must be 2 bytes")

// Parse converts s to the nearest float32 and then to Float16.
// It accepts the syntax of strconv.ParseFloat, including "NaN" and "±Inf".
func Parse(s string) (Float16, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return FromFloat32(float32(f)), nil
}

// String formats h as its shortest float32 representation.
func (h Float16) String() string {
	return strconv.FormatFloat(float64(h.Float32()), 'g', -1, 32)
}

// Format implements fmt.Formatter by formatting the float32 value of h,
// so every float verb and flag behaves as it does for float32.
func (h Float16) Format(s fmt.State, verb rune) {
	if verb == 's' {
		fmt.Fprintf(s, fmt.FormatString(s, verb), h.String())
		return
	}
	fmt.Fprintf(s, fmt.FormatString(s, verb), h.Float32())
}

// Scan implements fmt.Scanner. The token is parsed as a float32.
func (h *Float16) Scan(state fmt.ScanState, _ rune) error {
	tok, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	v, err := Parse(string(tok))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h Float16) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(h.Float32()), 'g', -1, 32), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Float16) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the little-endian bit pattern.
func (h Float16) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint16(nil, uint16(h)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Float16) UnmarshalBinary(data []byte) error {
	if len(data) != 2 {
		return ErrInvalidLength
	}
	*h = Float16(binary.LittleEndian.Uint16(data))
	return nil
}
