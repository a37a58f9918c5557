// Package dispatch picks the chunk width used by the string kernels and
// splits a buffer into a vector-processable body and a scalar tail.
package dispatch

import (
	"fmt"
	"os"
	"strconv"
)

// Width is the number of bytes a kernel consumes per loop iteration.
type Width int

const (
	// Scalar processes one byte at a time; it is the reference behaviour
	// every vector width must reproduce.
	Scalar Width = 1

	// W16 processes one 128-bit lane per iteration (NEON, SSE2).
	W16 Width = 16

	// W32 processes two 128-bit lanes per iteration (AVX2 hosts).
	W32 Width = 32
)

func (w Width) String() string {
	switch w {
	case Scalar:
		return "scalar"
	case W16:
		return "16"
	case W32:
		return "32"
	default:
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
}

// Widths lists every supported width, narrowest first.
var Widths = [...]Width{Scalar, W16, W32}

// ParseWidth parses "scalar"/"1", "16" or "32".
func ParseWidth(s string) (Width, error) {
	switch s {
	case "scalar", "1":
		return Scalar, nil
	case "16":
		return W16, nil
	case "32":
		return W32, nil
	}
	return 0, fmt.Errorf("dispatch: unknown width %q", s)
}

// Level is the CPU feature tier detected at startup.
type Level int

const (
	// LevelScalar means vector kernels were disabled.
	LevelScalar Level = iota

	// LevelGeneric is an architecture without a known vector unit; the
	// word-parallel kernels still run at W16.
	LevelGeneric

	// LevelSSE2 is the amd64 baseline.
	LevelSSE2

	// LevelAVX2 is an amd64 host with 256-bit integer vectors.
	LevelAVX2

	// LevelNEON is an arm64 host with Advanced SIMD.
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelGeneric:
		return "generic"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set once by init and never written again.
var (
	currentWidth Width
	currentLevel Level
)

func init() {
	if NoSimdEnv() {
		currentWidth, currentLevel = Scalar, LevelScalar
		return
	}
	currentWidth, currentLevel = detect()
}

// Current returns the width the public kernels use on this host.
func Current() Width {
	return currentWidth
}

// CurrentLevel returns the detected feature tier.
func CurrentLevel() Level {
	return currentLevel
}

// NoSimdEnv reports whether STRLANE_NO_SIMD asks for the scalar path.
// Any non-empty value that does not parse as a bool counts as true.
func NoSimdEnv() bool {
	val := os.Getenv("STRLANE_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
