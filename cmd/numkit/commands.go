package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/numkit"
	"github.com/hupe1980/numkit/f16"
	"github.com/hupe1980/numkit/halfbuf"
)

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func runStats(e *env, args []string) error {
	fs := newFlagSet(e, "stats")
	typ := fs.String("type", "float64", "sample type: float32, float64 or half")
	workers := fs.Int("workers", 1, "goroutines to use (0 = GOMAXPROCS)")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	samples, err := readInput(e, fs.Args())
	if err != nil {
		return err
	}

	opts := []numkit.Option{numkit.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, numkit.WithLogger(numkit.NewLogger(
			slog.NewTextHandler(e.stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}

	ctx := context.Background()
	switch *typ {
	case "float64":
		s, err := numkit.Summarize(ctx, samples, opts...)
		if err != nil {
			return err
		}
		printSummary(e.stdout, s.Count, s.Min, s.Max, s.Sum, s.Mean)
	case "float32":
		narrow := make([]float32, len(samples))
		for i, v := range samples {
			narrow[i] = float32(v)
		}
		s, err := numkit.Summarize(ctx, narrow, opts...)
		if err != nil {
			return err
		}
		printSummary(e.stdout, s.Count, s.Min, s.Max, s.Sum, s.Mean)
	case "half":
		halves := make([]f16.Float16, len(samples))
		for i, v := range samples {
			halves[i] = f16.FromFloat64(v)
		}
		s, err := numkit.Summarize(ctx, halves, opts...)
		if err != nil {
			return err
		}
		printSummary(e.stdout, s.Count, s.Min, s.Max, s.Sum, s.Mean)
	default:
		return fmt.Errorf("unknown type %q", *typ)
	}
	return nil
}

func printSummary(w io.Writer, count uint64, minV, maxV, sum any, mean float64) {
	fmt.Fprintf(w, "count %d\n", count)
	fmt.Fprintf(w, "min   %v\n", minV)
	fmt.Fprintf(w, "max   %v\n", maxV)
	fmt.Fprintf(w, "sum   %v\n", sum)
	fmt.Fprintf(w, "mean  %v\n", mean)
}

func runConvert(e *env, args []string) error {
	fs := newFlagSet(e, "convert")
	fromBits := fs.Bool("bits", false, "arguments are binary16 bit patterns (e.g. 0x3c00)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("no values given")
	}

	for _, arg := range fs.Args() {
		if *fromBits {
			b, err := strconv.ParseUint(arg, 0, 16)
			if err != nil {
				return fmt.Errorf("parse bits %q: %w", arg, err)
			}
			h := f16.FromBits(uint16(b))
			fmt.Fprintf(e.stdout, "0x%04x\t%v\t%s\n", h.Bits(), h, classify(h))
			continue
		}

		h, err := f16.Parse(arg)
		if err != nil {
			return fmt.Errorf("parse value %q: %w", arg, err)
		}
		fmt.Fprintf(e.stdout, "%s\t0x%04x\t%v\n", arg, h.Bits(), h)
	}
	return nil
}

func classify(h f16.Float16) string {
	switch {
	case h.IsNaN():
		return "nan"
	case h.IsInf():
		return "inf"
	case h.IsSubnormal():
		return "subnormal"
	case !h.Bool():
		return "zero"
	default:
		return "normal"
	}
}

func runPack(e *env, args []string) error {
	fs := newFlagSet(e, "pack")
	comp := fs.String("c", "zstd", "compression: none, lz4 or zstd")
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c, err := halfbuf.ParseCompression(*comp)
	if err != nil {
		return err
	}

	samples, err := readInput(e, fs.Args())
	if err != nil {
		return err
	}
	values := make([]float32, len(samples))
	for i, v := range samples {
		values[i] = float32(v)
	}

	data, err := numkit.EncodeHalf(context.Background(), values, numkit.WithCompression(c))
	if err != nil {
		return err
	}

	if *out == "" {
		if _, err := e.stdout.Write(data); err != nil {
			return err
		}
	} else if err := os.WriteFile(*out, data, 0o644); err != nil {
		return err
	}

	raw := uint64(4 * len(values))
	fmt.Fprintf(e.stderr, "packed %s values: %s -> %s (%s)\n",
		humanize.Comma(int64(len(values))),
		humanize.Bytes(raw),
		humanize.Bytes(uint64(len(data))),
		c,
	)
	return nil
}

func runUnpack(e *env, args []string) error {
	fs := newFlagSet(e, "unpack")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var r io.Reader = e.stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	w := bufio.NewWriter(e.stdout)
	for v, err := range halfbuf.NewReader(r).All() {
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	return w.Flush()
}

func runBackend(e *env, _ []string) error {
	_, err := fmt.Fprintln(e.stdout, numkit.Backend())
	return err
}

// readInput parses whitespace-separated numbers from the named file, or
// from stdin if no file is given.
func readInput(e *env, args []string) ([]float64, error) {
	var r io.Reader = e.stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parseNumbers(r)
}

func parseNumbers(r io.Reader) ([]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var out []float64
	for sc.Scan() {
		tok := strings.TrimSuffix(sc.Text(), ",")
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, sc.Err()
}
