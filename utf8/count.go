package utf8

import (
	"github.com/mhr3/strlane/internal/dispatch"
	"github.com/mhr3/strlane/internal/lanes"
)

// RuneCount returns the number of runes in p.
//
// Every byte that is not a continuation byte starts a rune, so for valid
// UTF-8 this equals unicode/utf8.RuneCount. Invalid input is not rejected;
// the result is then the number of non-continuation bytes.
func RuneCount(p []byte) int {
	return runeCount(p, dispatch.Current())
}

// RuneCountString is like RuneCount but its input is a string.
func RuneCountString(s string) int {
	return runeCount(s, dispatch.Current())
}

func runeCount[T string | []byte](s T, w dispatch.Width) int {
	n := 0
	full := 0
	switch w {
	case dispatch.W32:
		full, _ = dispatch.Split(len(s), w)
		for i := 0; i < full; i++ {
			chunk := s[i*32:]
			a, b := lanes.Load(chunk), lanes.Load(chunk[16:])
			if a.Or(b).IsASCII() {
				n += 32
				continue
			}
			n += countLeads(a) + countLeads(b)
		}
	case dispatch.W16:
		full, _ = dispatch.Split(len(s), w)
		for i := 0; i < full; i++ {
			n += countLeads(lanes.Load(s[i*16:]))
		}
	}

	return n + runeCountGo(s[full*int(w):])
}

func countLeads(v lanes.Uint8x16) int {
	if v.IsASCII() {
		return 16
	}
	return v.Continuation().Not().CountTrue()
}
