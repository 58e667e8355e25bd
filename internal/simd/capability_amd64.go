//go:build amd64 && !noasm

package simd

import (
	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sys/cpu"
)

func init() {
	hasAVX = cpu.X86.HasAVX
	// F16C is VEX-encoded: it needs OS support for AVX state as well as the CPUID bit.
	hasF16C = hasAVX && cpuid.CPU.Supports(cpuid.F16C)
	initCapabilities()
}
