package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &env{stdin: strings.NewReader(stdin), stdout: &out, stderr: &errOut})
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: numkit")

	code, _, stderr = runCmd(t, "", "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)
}

func TestStats(t *testing.T) {
	code, stdout, stderr := runCmd(t, "1 2 3\n4, 5\n", "stats", "-type", "float64")
	require.Equal(t, 0, code, stderr)

	assert.Equal(t, "count 5\nmin   1\nmax   5\nsum   15\nmean  3\n", stdout)
}

func TestStats_Half(t *testing.T) {
	code, stdout, stderr := runCmd(t, "0.5 1.5 -1", "stats", "-type", "half", "-workers", "0")
	require.Equal(t, 0, code, stderr)

	assert.Contains(t, stdout, "min   -1\n")
	assert.Contains(t, stdout, "sum   1\n")
}

func TestStats_Errors(t *testing.T) {
	code, _, stderr := runCmd(t, "1 two", "stats")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `parse "two"`)

	code, _, stderr = runCmd(t, "1 NaN", "stats")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "non-finite sample at index 1")

	code, _, stderr = runCmd(t, "1", "stats", "-type", "int")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown type "int"`)
}

func TestStats_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 20 30"), 0o600))

	code, stdout, stderr := runCmd(t, "", "stats", "-type", "float32", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "sum   60\n")
}

func TestConvert(t *testing.T) {
	code, stdout, stderr := runCmd(t, "", "convert", "1", "-2", "65504")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1\t0x3c00\t1\n-2\t0xc000\t-2\n65504\t0x7bff\t65504\n", stdout)

	code, stdout, stderr = runCmd(t, "", "convert", "-bits", "0x3c00", "0x0001", "0x7c00", "0x7e00", "0x8000")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "0x3c00\t1\tnormal", lines[0])
	assert.Equal(t, "0x0001\t5.9604645e-08\tsubnormal", lines[1])
	assert.Equal(t, "0x7c00\t+Inf\tinf", lines[2])
	assert.Equal(t, "0x7e00\tNaN\tnan", lines[3])
	assert.Equal(t, "0x8000\t-0\tzero", lines[4])

	code, _, _ = runCmd(t, "", "convert")
	assert.Equal(t, 1, code)

	code, _, _ = runCmd(t, "", "convert", "-bits", "0x10000")
	assert.Equal(t, 1, code)
}

func TestPackUnpack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h16")

	code, _, stderr := runCmd(t, "0.5 1 1.5 2", "pack", "-c", "lz4", "-o", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "packed 4 values: 16 B -> ")

	code, stdout, stderr := runCmd(t, "", "unpack", path)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "0.5\n1\n1.5\n2\n", stdout)
}

func TestPack_Stdout(t *testing.T) {
	code, packed, _ := runCmd(t, "3 4", "pack", "-c", "none")
	require.Equal(t, 0, code)

	code, stdout, stderr := runCmd(t, packed, "unpack")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "3\n4\n", stdout)

	code, _, stderr = runCmd(t, "1", "pack", "-c", "brotli")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown compression")
}

func TestBackendCommand(t *testing.T) {
	code, stdout, _ := runCmd(t, "", "backend")
	require.Equal(t, 0, code)
	assert.Contains(t, []string{"native\n", "f16c\n"}, stdout)
}
