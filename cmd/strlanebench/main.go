// Command strlanebench exercises the strlane kernels from the outside.
//
// Usage:
//
//	strlanebench                                   # contract checks, PASS/FAIL per line
//	strlanebench -mode bench                       # throughput vs. naive byte loops
//	strlanebench -mode bench -sizes 4096 -data text,utf8 -iterations 500
//
// Set STRLANE_NO_SIMD=1 to force the scalar kernels.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mhr3/strlane/internal/dispatch"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("strlanebench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "check", "what to run: check or bench")
	sizeList := fs.String("sizes", "1024,65536,1048576", "comma-separated buffer sizes in bytes (bench)")
	iterations := fs.Int("iterations", 100, "invocations per measurement (bench)")
	dataList := fs.String("data", "all", "comma-separated datasets: "+strings.Join(datasetNames(), ", ")+" or all (bench)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return 2
	}

	var err error
	switch *mode {
	case "check":
		var failed int
		failed, err = runChecks(stdout)
		if err == nil && failed > 0 {
			return 1
		}
	case "bench":
		cfg, cfgErr := parseBenchConfig(*sizeList, *dataList, *iterations)
		if cfgErr != nil {
			fmt.Fprintf(stderr, "error: %v\n", cfgErr)
			return 2
		}
		err = runBench(stdout, cfg)
	default:
		fmt.Fprintf(stderr, "error: unknown mode %q\n", *mode)
		fs.Usage()
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

type benchConfig struct {
	sizes      []int
	datasets   []dataset
	iterations int
}

func parseBenchConfig(sizeList, dataList string, iterations int) (benchConfig, error) {
	if iterations <= 0 {
		return benchConfig{}, fmt.Errorf("iterations must be positive, got %d", iterations)
	}
	cfg := benchConfig{iterations: iterations}

	var errs []error
	for _, f := range strings.Split(sizeList, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("invalid size %q", f))
			continue
		}
		cfg.sizes = append(cfg.sizes, n)
	}

	ds, err := lookupDatasets(dataList)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.datasets = ds

	return cfg, errors.Join(errs...)
}

// header describes the kernels selected on this host.
func header() string {
	return fmt.Sprintf("strlane: level=%s width=%s", dispatch.CurrentLevel(), dispatch.Current())
}
