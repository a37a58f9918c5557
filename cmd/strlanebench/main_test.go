package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckModePasses(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs(nil, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "strlane: level="))
	assert.NotContains(t, out, "FAIL")
	assert.Equal(t, len(checks), strings.Count(out, "PASS: "))
	assert.Contains(t, out, "all ")
	assert.Empty(t, stderr.String())
}

func TestUsageErrors(t *testing.T) {
	tests := [][]string{
		{"-mode", "nope"},
		{"-unknown"},
		{"extra"},
		{"-mode", "bench", "-sizes", "0"},
		{"-mode", "bench", "-sizes", "x,16"},
		{"-mode", "bench", "-data", "binary"},
		{"-mode", "bench", "-iterations", "0"},
	}

	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, runWithArgs(args, &stdout, &stderr), "args %q", args)
		assert.NotEmpty(t, stderr.String(), "args %q", args)
	}
}

func TestBenchMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs([]string{"-mode", "bench", "-sizes", "15,64", "-iterations", "2", "-data", "mixed, utf8"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	// header, column titles, then one row per dataset, size and operation
	assert.Len(t, lines, 2+2*2*len(operations))
	assert.Contains(t, lines[0], "iterations=2")
	for _, l := range lines[2:] {
		assert.Regexp(t, `^\w+\s+(mixed|utf8)\s+(15|64)\s`, l)
	}
}

func TestParseBenchConfigJoinsErrors(t *testing.T) {
	_, err := parseBenchConfig("a,-1", "nope", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid size "a"`)
	assert.Contains(t, err.Error(), `invalid size "-1"`)
	assert.Contains(t, err.Error(), `unknown dataset "nope"`)

	cfg, err := parseBenchConfig("16, 32", "all", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32}, cfg.sizes)
	assert.Len(t, cfg.datasets, len(datasets))
	assert.Equal(t, 3, cfg.iterations)
}

func TestDatasets(t *testing.T) {
	for _, d := range datasets {
		for _, size := range []int{1, 17, 100} {
			b := d.build(size)
			require.Len(t, b, size)
			assert.NotContains(t, b, byte(0), "dataset %s left bytes unfilled", d.name)
		}
	}

	ds, err := lookupDatasets("text,lower")
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "text", ds[0].name)
	assert.Equal(t, "lower", ds[1].name)
}

func TestOperationsMatchBaseline(t *testing.T) {
	for _, d := range datasets {
		data := d.build(1000)
		for _, op := range operations {
			if !op.mutates {
				continue
			}
			got, want := bytes.Clone(data), bytes.Clone(data)
			op.kernel(got)
			op.baseline(want)
			assert.Equal(t, want, got, "%s on %s", op.name, d.name)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrorsAreReported(t *testing.T) {
	var stderr bytes.Buffer
	code := runWithArgs(nil, failingWriter{}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "disk full")
}
