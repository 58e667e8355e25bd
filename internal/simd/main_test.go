package simd

import (
	"fmt"
	"os"
	"runtime"
	"testing"
)

// TestMain prints which conversion backend is active before running tests.
// This helps CI identify whether the hardware path is actually exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== F16 Backend Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvBackend, os.Getenv(EnvBackend))
	fmt.Printf("Active backend: %s\n", ActiveBackend())
	fmt.Printf("Override: %v\n", IsOverridden())
	if runtime.GOARCH == "amd64" {
		fmt.Printf("  AVX: %v\n", HasAVX())
		fmt.Printf("  F16C: %v\n", HasF16C())
	}
	fmt.Printf("===============================\n\n")

	os.Exit(m.Run())
}
