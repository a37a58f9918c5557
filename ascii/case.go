package ascii

import (
	"github.com/mhr3/strlane/internal/dispatch"
	"github.com/mhr3/strlane/internal/lanes"
)

// Case selects the direction of a case conversion.
type Case uint8

const (
	// Lower maps A-Z to a-z.
	Lower Case = iota
	// Upper maps a-z to A-Z.
	Upper
)

func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

// caseDelta is the distance between an upper case ASCII letter and its lower
// case counterpart.
const caseDelta = 'a' - 'A'

// ConvertCase rewrites the ASCII letters of b in place so they are in case c.
// Every other byte, including every byte >= 0x80, is left bit-for-bit
// unchanged, so UTF-8 text stays valid. The length of b never changes.
func ConvertCase(b []byte, c Case) {
	convertCase(b, c, dispatch.Current())
}

// ToUpper converts a-z to A-Z in place.
func ToUpper(b []byte) {
	convertCase(b, Upper, dispatch.Current())
}

// ToLower converts A-Z to a-z in place.
func ToLower(b []byte) {
	convertCase(b, Lower, dispatch.Current())
}

// sourceRange returns the letters that ConvertCase rewrites for direction c.
func sourceRange(c Case) (lo, hi byte) {
	if c == Upper {
		return 'a', 'z'
	}
	return 'A', 'Z'
}

func convertCase(b []byte, c Case, w dispatch.Width) {
	lo, hi := sourceRange(c)

	var body int
	switch w {
	case dispatch.W32:
		body = dispatch.Body(len(b), w)
		for i := 0; i < body; i += 32 {
			convertChunk(b[i:], lo, hi, c)
			convertChunk(b[i+16:], lo, hi, c)
		}
	case dispatch.W16:
		body = dispatch.Body(len(b), w)
		for i := 0; i < body; i += 16 {
			convertChunk(b[i:], lo, hi, c)
		}
	}

	convertCaseGo(b[body:], lo, hi, c)
}

// convertChunk converts the 16 bytes at the start of b. Chunks without a
// source letter are not written back.
func convertChunk(b []byte, lo, hi byte, c Case) {
	v := lanes.Load(b)
	m := v.InRange(lo, hi)
	if !m.Any() {
		return
	}

	var adjusted lanes.Uint8x16
	if c == Upper {
		adjusted = v.Sub(caseDelta)
	} else {
		adjusted = v.Add(caseDelta)
	}
	m.IfThenElse(adjusted, v).Store(b)
}
