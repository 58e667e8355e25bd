package simd

import (
	"os"
	"strings"
)

// Backend identifies an implementation of the binary16 <-> binary32 conversion.
type Backend uint8

const (
	// Native is the portable bit-manipulation implementation.
	Native Backend = iota
	// F16C is the x86-64 hardware path (VCVTPS2PH / VCVTPH2PS).
	F16C
)

// EnvBackend is the environment variable that overrides backend selection.
const EnvBackend = "NUMKIT_F16"

// String returns the string representation of a Backend.
func (b Backend) String() string {
	switch b {
	case Native:
		return "native"
	case F16C:
		return "f16c"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend value.
func ParseBackend(s string) (Backend, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "native", "generic":
		return Native, true
	case "f16c":
		return F16C, true
	default:
		return Native, false
	}
}

// Package-level state, initialized once at package init.
var (
	// activeBackend is the selected conversion implementation.
	activeBackend Backend

	// hasOverride is true if NUMKIT_F16 was set to a usable backend.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasAVX  bool // x86-64 AVX (VEX encoding usable by the OS)
	hasF16C bool // x86-64 half-precision conversion instructions
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvBackend); override != "" {
		if b, ok := ParseBackend(override); ok && isBackendAvailable(b) {
			hasOverride = true
			activeBackend = b
			return
		}
		// Unknown or unavailable override - fall through to auto-detection
	}

	activeBackend = selectBestBackend()
}

// isBackendAvailable checks if a backend is supported on this CPU.
func isBackendAvailable(b Backend) bool {
	switch b {
	case Native:
		return true
	case F16C:
		return hasF16C
	default:
		return false
	}
}

func selectBestBackend() Backend {
	if hasF16C {
		return F16C
	}
	return Native
}

// ActiveBackend returns the currently active Backend.
func ActiveBackend() Backend {
	return activeBackend
}

// IsOverridden returns true if NUMKIT_F16 selected the backend.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX returns true if x86-64 AVX is available.
func HasAVX() bool {
	return hasAVX
}

// HasF16C returns true if the hardware conversion path can be used.
func HasF16C() bool {
	return hasF16C
}

// F16ToF32 widens a binary16 bit pattern using the hardware path.
// The caller must check HasF16C first.
func F16ToF32(h uint16) float32 {
	return f16ToF32F16C(h)
}

// F32ToF16 narrows a float32 using the hardware path, rounding to nearest even.
// The caller must check HasF16C first.
func F32ToF16(f float32) uint16 {
	return f32ToF16F16C(f)
}
