package dispatch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		n          int
		w          Width
		full, tail int
	}{
		{0, W16, 0, 0},
		{15, W16, 0, 15},
		{16, W16, 1, 0},
		{17, W16, 1, 1},
		{31, W32, 0, 31},
		{32, W32, 1, 0},
		{33, W32, 1, 1},
		{100, W32, 3, 4},
		{7, Scalar, 7, 0},
	}

	for _, tt := range tests {
		full, tail := Split(tt.n, tt.w)
		assert.Equal(t, tt.full, full, "Split(%d, %s)", tt.n, tt.w)
		assert.Equal(t, tt.tail, tail, "Split(%d, %s)", tt.n, tt.w)
		assert.Equal(t, tt.full*int(tt.w), Body(tt.n, tt.w), "Body(%d, %s)", tt.n, tt.w)
	}
}

func TestSplitCoversBuffer(t *testing.T) {
	for _, w := range Widths {
		for n := 0; n < 200; n++ {
			full, tail := Split(n, w)
			require.Equal(t, n, full*int(w)+tail)
			require.Less(t, tail, int(w))
		}
	}
}

func TestWidthString(t *testing.T) {
	assert.Equal(t, "scalar", Scalar.String())
	assert.Equal(t, "16", W16.String())
	assert.Equal(t, "32", W32.String())
	assert.Equal(t, "Width(8)", Width(8).String())
}

func TestParseWidth(t *testing.T) {
	for _, w := range Widths {
		got, err := ParseWidth(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, got)
	}

	got, err := ParseWidth("1")
	require.NoError(t, err)
	assert.Equal(t, Scalar, got)

	_, err = ParseWidth("64")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "scalar", LevelScalar.String())
	assert.Equal(t, "generic", LevelGeneric.String())
	assert.Equal(t, "sse2", LevelSSE2.String())
	assert.Equal(t, "avx2", LevelAVX2.String())
	assert.Equal(t, "neon", LevelNEON.String())
	assert.Equal(t, "unknown", Level(99).String())
}

func TestCurrent(t *testing.T) {
	assert.Contains(t, Widths[:], Current())
	if NoSimdEnv() {
		assert.Equal(t, Scalar, Current())
		assert.Equal(t, LevelScalar, CurrentLevel())
	} else {
		assert.NotEqual(t, Scalar, Current())
		assert.NotEqual(t, LevelScalar, CurrentLevel())
	}
}

func TestDetect(t *testing.T) {
	w, l := detect()
	assert.Contains(t, []Width{W16, W32}, w)
	assert.NotEqual(t, LevelScalar, l)
	if w == W32 {
		assert.Equal(t, LevelAVX2, l)
	}
	switch runtime.GOARCH {
	case "arm64":
		assert.Equal(t, W16, w)
		assert.Contains(t, []Level{LevelNEON, LevelGeneric}, l)
	case "amd64":
		assert.Contains(t, []Level{LevelSSE2, LevelAVX2}, l)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Setenv("STRLANE_NO_SIMD", tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "STRLANE_NO_SIMD=%q", tt.val)
	}
}
