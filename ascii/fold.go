package ascii

import (
	"github.com/mhr3/strlane/internal/dispatch"
	"github.com/mhr3/strlane/internal/lanes"
)

// EqualFold reports whether a and b are equal when ASCII letters are
// compared without regard to case. Bytes >= 0x80 must match exactly.
func EqualFold[T string | []byte](a, b T) bool {
	return equalFold(a, b, dispatch.Current())
}

// HasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix, ignoring ASCII case.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

func equalFold[T string | []byte](a, b T, w dispatch.Width) bool {
	if len(a) != len(b) {
		return false
	}

	if w != dispatch.Scalar {
		for ; len(a) >= 16; a, b = a[16:], b[16:] {
			va, vb := lanes.Load(a), lanes.Load(b)
			if va != vb && foldUpper(va) != foldUpper(vb) {
				return false
			}
		}
	}
	return equalFoldGo(a, b)
}

// foldUpper maps a-z to A-Z, the lane form of ConvertCase(b, Upper).
func foldUpper(v lanes.Uint8x16) lanes.Uint8x16 {
	m := v.InRange('a', 'z')
	if !m.Any() {
		return v
	}
	return m.IfThenElse(v.Sub(caseDelta), v)
}
