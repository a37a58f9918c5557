package utf8

import (
	"errors"

	"github.com/mhr3/strlane/ascii"
	"github.com/mhr3/strlane/internal/dispatch"
	"github.com/mhr3/strlane/internal/lanes"
)

// ErrInvalid is returned by Validate for input that is not valid UTF-8.
var ErrInvalid = errors.New("utf8: invalid UTF-8 sequence")

// Valid reports whether p consists entirely of valid UTF-8-encoded runes.
// It accepts exactly what unicode/utf8.Valid accepts.
func Valid(p []byte) bool {
	return valid(p, dispatch.Current())
}

// ValidString reports whether s consists entirely of valid UTF-8-encoded runes.
func ValidString(s string) bool {
	return valid(s, dispatch.Current())
}

// Validate returns ErrInvalid if p is not valid UTF-8.
func Validate(p []byte) error {
	if !Valid(p) {
		return ErrInvalid
	}
	return nil
}

func valid[T string | []byte](s T, w dispatch.Width) bool {
	// speed up the common case
	idx := asciiPrefix(s, w)
	if idx == -1 {
		return true
	}
	s = s[idx:]

	var body int
	switch w {
	case dispatch.W32:
		body = dispatch.Body(len(s), w)
		var prev lanes.Uint8x16
		for i := 0; i < body; i += 32 {
			a, b := lanes.Load(s[i:]), lanes.Load(s[i+16:])
			if a.Or(b).IsASCII() {
				if incomplete(prev) {
					return false
				}
			} else if !checkChunk(prev, a) || !checkChunk(a, b) {
				return false
			}
			prev = b
		}
	case dispatch.W16:
		body = dispatch.Body(len(s), w)
		var prev lanes.Uint8x16
		for i := 0; i < body; i += 16 {
			cur := lanes.Load(s[i:])
			if !checkChunk(prev, cur) {
				return false
			}
			prev = cur
		}
	}

	return validGo(s[resume(s, body):])
}

// asciiPrefix returns the length of the leading ASCII run of s, or -1 if s is
// all ASCII. The scalar width skips nothing and leaves every byte to validGo.
func asciiPrefix[T string | []byte](s T, w dispatch.Width) int {
	if w == dispatch.Scalar {
		return 0
	}
	return ascii.IndexMask(s, 0x80)
}

// checkChunk validates the 16 bytes in cur given the 16 bytes that preceded
// them. prev is the only state carried between chunks: every expectation a
// lead byte creates reaches at most three lanes ahead, so the tail of prev
// fully determines what the head of cur must look like.
//
// Expectations that run past the end of cur are checked by the next chunk,
// or by the scalar tail once the input runs out.
func checkChunk(prev, cur lanes.Uint8x16) bool {
	if cur.IsASCII() {
		return !incomplete(prev)
	}

	prev1 := cur.ShiftIn(prev, 1)
	prev2 := cur.ShiftIn(prev, 2)
	prev3 := cur.ShiftIn(prev, 3)

	// A lane must be a continuation byte exactly when a lead byte one, two
	// or three lanes back still owes one.
	want := prev1.AtLeast(0xc0).Or(prev2.AtLeast(0xe0)).Or(prev3.AtLeast(0xf0))
	bad := want.Xor(cur.Continuation())

	// C0 and C1 only start overlong forms; F5 and up encode past U+10FFFF.
	bad = bad.Or(cur.InRange(0xc0, 0xc1)).Or(cur.AtLeast(0xf5))

	// Second byte ranges that depend on the lead byte.
	bad = bad.
		Or(prev1.Eq(0xe0).And(cur.InRange(0x80, 0x9f))). // overlong 3-byte
		Or(prev1.Eq(0xed).And(cur.InRange(0xa0, 0xbf))). // surrogates
		Or(prev1.Eq(0xf0).And(cur.InRange(0x80, 0x8f))). // overlong 4-byte
		Or(prev1.Eq(0xf4).And(cur.InRange(0x90, 0xbf)))  // above U+10FFFF

	return !bad.Any()
}

// incomplete reports whether v ends inside a multi-byte sequence.
func incomplete(v lanes.Uint8x16) bool {
	return v.Lane(15) >= 0xc0 || v.Lane(14) >= 0xe0 || v.Lane(13) >= 0xf0
}

// resume returns the offset in s[:n] where scalar validation has to pick up:
// the start of a sequence the vector body left unfinished, or n.
func resume[T string | []byte](s T, n int) int {
	for i := n - 1; i >= 0 && i >= n-3; i-- {
		c := s[i]
		if c < 0x80 {
			return n
		}
		if c >= 0xc0 {
			if n-i < sequenceLen(c) {
				return i
			}
			return n
		}
	}
	return n
}

// sequenceLen returns the length of the sequence lead byte c announces.
// Bytes that can never lead are reported by their high bits only; validation
// rejects them separately.
func sequenceLen(c byte) int {
	switch {
	case c < 0xe0:
		return 2
	case c < 0xf0:
		return 3
	default:
		return 4
	}
}
