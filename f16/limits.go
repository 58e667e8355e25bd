package f16

// Named values. Bit patterns follow 1'sign 5'exponent 10'mantissa.
const (
	Zero  Float16 = 0x0000 // 0'00000'0000000000
	One   Float16 = 0x3C00 // 0'01111'0000000000
	Two   Float16 = 0x4000 // 0'10000'0000000000
	Three Float16 = 0x4200 // 0'10000'1000000000
	Four  Float16 = 0x4400 // 0'10001'0000000000
	Five  Float16 = 0x4500 // 0'10001'0100000000
	Six   Float16 = 0x4600 // 0'10001'1000000000
	Seven Float16 = 0x4700 // 0'10001'1100000000
	Eight Float16 = 0x4800 // 0'10010'0000000000
	Nine  Float16 = 0x4880 // 0'10010'0010000000
	Ten   Float16 = 0x4900 // 0'10010'0100000000

	MinusZero  Float16 = 0x8000
	MinusOne   Float16 = 0xBC00
	MinusTwo   Float16 = 0xC000
	MinusThree Float16 = 0xC200
	MinusFour  Float16 = 0xC400
	MinusFive  Float16 = 0xC500
	MinusSix   Float16 = 0xC600
	MinusSeven Float16 = 0xC700
	MinusEight Float16 = 0xC800
	MinusNine  Float16 = 0xC880
	MinusTen   Float16 = 0xC900

	OneOverTwo   Float16 = 0x3800 // 0'01110'0000000000
	ThreeOverTwo Float16 = 0x3E00 // 0'01111'1000000000

	Infinity         Float16 = 0x7C00 // 0'11111'0000000000
	NegativeInfinity Float16 = 0xFC00 // 1'11111'0000000000
	QuietNaN         Float16 = 0xFE01 // 1'11111'1000000001
	SignalingNaN     Float16 = 0xFC01 // 1'11111'0000000001
)

// Limits of the binary16 format.
const (
	// MinNormal is the smallest positive normal value, 2^-14 (~6.1035e-05).
	MinNormal Float16 = 0x0400
	// DenormMin is the smallest positive subnormal value, 2^-24 (~5.9605e-08).
	DenormMin Float16 = 0x0001
	// MaxValue is the largest finite value, 65504.
	MaxValue Float16 = 0x7BFF
	// Lowest is the most negative finite value, -65504.
	Lowest Float16 = 0xFBFF
	// Epsilon is the difference between 1 and the next representable value, 2^-10.
	Epsilon Float16 = 0x1400
	// RoundError is the maximum rounding error, Epsilon/2.
	RoundError Float16 = 0x1000
)

// Format characteristics, matching the compiler-provided __FLT16_* macros.
const (
	Radix         = 2
	Digits        = 11
	Digits10      = 3
	MaxDigits10   = 5
	MinExponent   = -13
	MinExponent10 = -4
	MaxExponent   = 16
	MaxExponent10 = 4
)
