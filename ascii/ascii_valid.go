package ascii

import (
	"github.com/mhr3/strlane/internal/dispatch"
	"github.com/mhr3/strlane/internal/lanes"
)

// Valid reports whether b contains only ASCII bytes.
func Valid(b []byte) bool {
	return IndexMask(b, 0x80) == -1
}

// ValidString reports whether s contains only ASCII bytes.
func ValidString(s string) bool {
	return IndexMask(s, 0x80) == -1
}

// IndexMask returns the index of the first byte of s that has any bit of mask
// set, or -1 if there is none.
func IndexMask[T string | []byte](s T, mask byte) int {
	return indexMask(s, mask, dispatch.Current())
}

func indexMask[T string | []byte](s T, mask byte, w dispatch.Width) int {
	if mask == 0 {
		return -1
	}

	pos := 0
	if w != dispatch.Scalar {
		for ; len(s) >= 16; pos, s = pos+16, s[16:] {
			if i := lanes.Load(s).AnyBits(mask).FirstTrue(); i >= 0 {
				return pos + i
			}
		}
	}

	if i := indexMaskGo(s, mask); i >= 0 {
		return pos + i
	}
	return -1
}
