package f16

import (
	"github.com/x448/float16"
)

// FromX448 converts a github.com/x448/float16 value by bit cast.
func FromX448(v float16.Float16) Float16 {
	return Float16(v.Bits())
}

// X448 converts h to a github.com/x448/float16 value by bit cast.
func (h Float16) X448() float16.Float16 {
	return float16.Frombits(uint16(h))
}
