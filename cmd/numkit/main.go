// Command numkit exposes half-precision conversion, compensated summary
// statistics and binary16 packing on the command line.
//
// Usage:
//
//	numkit stats   [-type float32|float64|half] [-workers n] [file]
//	numkit convert [-bits] value...
//	numkit pack    [-c none|lz4|zstd] [-o out] [file]
//	numkit unpack  [file]
//	numkit backend
package main

import (
	"fmt"
	"io"
	"os"
)

type command struct {
	name    string
	summary string
	run     func(env *env, args []string) error
}

// env carries the process streams so commands can be tested.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var commands = []command{
	{"stats", "summarize whitespace-separated numbers", runStats},
	{"convert", "convert floats to binary16 bits or bits to floats", runConvert},
	{"pack", "encode numbers as binary16 blocks", runPack},
	{"unpack", "decode binary16 blocks to numbers", runUnpack},
	{"backend", "print the active binary16 conversion backend", runBackend},
}

func main() {
	os.Exit(run(os.Args[1:], &env{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}))
}

func run(args []string, e *env) int {
	if len(args) < 1 {
		usage(e.stderr)
		return 2
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if err := c.run(e, args[1:]); err != nil {
			fmt.Fprintf(e.stderr, "numkit %s: %v\n", c.name, err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(e.stderr, "numkit: unknown command %q\n", args[0])
	usage(e.stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: numkit <command> [options] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", c.name, c.summary)
	}
}
