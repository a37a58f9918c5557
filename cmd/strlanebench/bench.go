package main

import (
	"errors"
	"fmt"
	"io"
	"time"
	stdutf8 "unicode/utf8"

	"github.com/mhr3/strlane/ascii"
	"github.com/mhr3/strlane/utf8"
)

// operation pairs a kernel with the naive byte loop it replaces. Both run on
// a private copy of the dataset when mutates is set.
type operation struct {
	name     string
	mutates  bool
	kernel   func(b []byte)
	baseline func(b []byte)
}

// sink keeps read-only results alive so the calls are not optimized away.
var sink int

var operations = []operation{
	{"upper", true, ascii.ToUpper, naiveToUpper},
	{"lower", true, ascii.ToLower, naiveToLower},
	{"validate", false,
		func(b []byte) { sink += boolInt(utf8.Valid(b)) },
		func(b []byte) { sink += boolInt(stdutf8.Valid(b)) }},
	{"count", false,
		func(b []byte) { sink += utf8.RuneCount(b) },
		func(b []byte) { sink += stdutf8.RuneCount(b) }},
}

func naiveToUpper(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
}

func naiveToLower(b []byte) {
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// measure runs fn iterations times over a fresh copy of data and returns the
// elapsed wall time.
func measure(data []byte, iterations int, mutates bool, fn func(b []byte)) time.Duration {
	work := data
	if mutates {
		work = make([]byte, len(data))
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if mutates {
			copy(work, data)
		}
		fn(work)
	}
	return time.Since(start)
}

func throughput(size, iterations int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(size) * float64(iterations) / d.Seconds() / (1 << 20)
}

func runBench(w io.Writer, cfg benchConfig) error {
	var errs []error
	printf := func(format string, args ...any) {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			errs = append(errs, err)
		}
	}

	printf("%s iterations=%d\n", header(), cfg.iterations)
	printf("%-9s %-6s %10s %14s %14s %8s\n", "op", "data", "bytes", "strlane MB/s", "naive MB/s", "speedup")
	for _, d := range cfg.datasets {
		for _, size := range cfg.sizes {
			data := d.build(size)
			for _, op := range operations {
				fast := measure(data, cfg.iterations, op.mutates, op.kernel)
				slow := measure(data, cfg.iterations, op.mutates, op.baseline)

				speedup := 0.0
				if fast > 0 {
					speedup = float64(slow) / float64(fast)
				}
				printf("%-9s %-6s %10d %14.2f %14.2f %7.2fx\n",
					op.name, d.name, size,
					throughput(size, cfg.iterations, fast),
					throughput(size, cfg.iterations, slow),
					speedup)
			}
		}
	}
	return errors.Join(errs...)
}
