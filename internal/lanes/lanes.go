// Package lanes models a 128-bit byte vector as two little-endian 64-bit
// words. Every operation is lane exact: no carry or borrow ever crosses from
// one byte lane into its neighbour, so the kernels built on top behave the
// same as a 16-lane NEON or SSE2 register.
package lanes

import (
	"encoding/binary"
	"math/bits"
)

const (
	ones = ^uint64(0) / 255 // 0x0101010101010101
	high = ones * 0x80      // bit 7 of every lane
	low7 = ones * 0x7f      // bits 0-6 of every lane
)

// Uint8x16 is a 16-lane byte vector. Lane i is byte i of the source buffer.
type Uint8x16 struct {
	lo, hi uint64
}

// Mask8x16 is the result of a lane comparison. A selected lane has bit 7 set
// and every other bit clear; unselected lanes are zero.
type Mask8x16 struct {
	lo, hi uint64
}

// Broadcast returns a vector with every lane set to c.
func Broadcast(c byte) Uint8x16 {
	w := ones * uint64(c)
	return Uint8x16{w, w}
}

// Load reads the first 16 bytes of s. s must hold at least 16 bytes.
func Load[T string | []byte](s T) Uint8x16 {
	_ = s[15] // bounds check hint
	return Uint8x16{word(s), word(s[8:])}
}

// word assembles 8 bytes little endian; the compiler merges this into a
// single unaligned load for both strings and slices.
func word[T string | []byte](s T) uint64 {
	_ = s[7]
	return uint64(s[0]) | uint64(s[1])<<8 | uint64(s[2])<<16 | uint64(s[3])<<24 |
		uint64(s[4])<<32 | uint64(s[5])<<40 | uint64(s[6])<<48 | uint64(s[7])<<56
}

// Store writes the 16 lanes of v to b[0:16].
func (v Uint8x16) Store(b []byte) {
	_ = b[15]
	binary.LittleEndian.PutUint64(b, v.lo)
	binary.LittleEndian.PutUint64(b[8:], v.hi)
}

// Lane returns lane i.
func (v Uint8x16) Lane(i int) byte {
	if i < 8 {
		return byte(v.lo >> (8 * i))
	}
	return byte(v.hi >> (8 * (i - 8)))
}

// Or returns the bitwise union of v and o.
func (v Uint8x16) Or(o Uint8x16) Uint8x16 {
	return Uint8x16{v.lo | o.lo, v.hi | o.hi}
}

// IsASCII reports whether every lane has bit 7 clear.
func (v Uint8x16) IsASCII() bool {
	return (v.lo|v.hi)&high == 0
}

// HighBits selects the lanes holding a byte >= 0x80.
func (v Uint8x16) HighBits() Mask8x16 {
	return Mask8x16{v.lo & high, v.hi & high}
}

// InRange selects the lanes holding a byte in [lo, hi]. Both bounds must lie
// on the same side of 0x80.
func (v Uint8x16) InRange(lo, hi byte) Mask8x16 {
	return Mask8x16{inRange(v.lo, lo, hi), inRange(v.hi, lo, hi)}
}

// Eq selects the lanes equal to c.
func (v Uint8x16) Eq(c byte) Mask8x16 {
	return v.InRange(c, c)
}

// AtLeast selects the lanes holding a byte >= c. c must be >= 0x80.
func (v Uint8x16) AtLeast(c byte) Mask8x16 {
	return v.InRange(c, 0xff)
}

// AnyBits selects the lanes that share at least one set bit with mask.
func (v Uint8x16) AnyBits(mask byte) Mask8x16 {
	m := ones * uint64(mask)
	return Mask8x16{nonZero(v.lo & m), nonZero(v.hi & m)}
}

// Continuation selects the lanes holding a UTF-8 continuation byte (10xxxxxx).
func (v Uint8x16) Continuation() Mask8x16 {
	return Mask8x16{v.lo &^ (v.lo << 1) & high, v.hi &^ (v.hi << 1) & high}
}

// Add adds n to every lane, wrapping modulo 256.
func (v Uint8x16) Add(n byte) Uint8x16 {
	k := ones * uint64(n)
	return Uint8x16{add(v.lo, k), add(v.hi, k)}
}

// Sub subtracts n from every lane, wrapping modulo 256.
func (v Uint8x16) Sub(n byte) Uint8x16 {
	k := ones * uint64(n)
	return Uint8x16{sub(v.lo, k), sub(v.hi, k)}
}

// ShiftIn moves every lane k positions up and fills lanes 0..k-1 with the top
// k lanes of prev, so lane i of the result is the byte k positions before
// lane i of v in the stream prev, v. k must be in [1, 7].
func (v Uint8x16) ShiftIn(prev Uint8x16, k int) Uint8x16 {
	s := uint(8 * k)
	return Uint8x16{
		lo: v.lo<<s | prev.hi>>(64-s),
		hi: v.hi<<s | v.lo>>(64-s),
	}
}

// IfThenElse picks the lanes of a where m is selected and the lanes of b
// elsewhere.
func (m Mask8x16) IfThenElse(a, b Uint8x16) Uint8x16 {
	lo, hi := widen(m.lo), widen(m.hi)
	return Uint8x16{
		lo: a.lo&lo | b.lo&^lo,
		hi: a.hi&hi | b.hi&^hi,
	}
}

func (m Mask8x16) Or(o Mask8x16) Mask8x16 {
	return Mask8x16{m.lo | o.lo, m.hi | o.hi}
}

func (m Mask8x16) And(o Mask8x16) Mask8x16 {
	return Mask8x16{m.lo & o.lo, m.hi & o.hi}
}

func (m Mask8x16) Xor(o Mask8x16) Mask8x16 {
	return Mask8x16{m.lo ^ o.lo, m.hi ^ o.hi}
}

// Not selects exactly the lanes m does not.
func (m Mask8x16) Not() Mask8x16 {
	return Mask8x16{high &^ m.lo, high &^ m.hi}
}

// Any reports whether at least one lane is selected.
func (m Mask8x16) Any() bool {
	return m.lo|m.hi != 0
}

// CountTrue returns the number of selected lanes.
func (m Mask8x16) CountTrue() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

// FirstTrue returns the lowest selected lane, or -1 if none is selected.
func (m Mask8x16) FirstTrue() int {
	if m.lo != 0 {
		return bits.TrailingZeros64(m.lo) / 8
	}
	if m.hi != 0 {
		return 8 + bits.TrailingZeros64(m.hi)/8
	}
	return -1
}

// inRange is the word form of InRange, based on
// https://graphics.stanford.edu/~seander/bithacks.html#HasBetweenInWord
// with the 7-bit sums kept below 0x100 so each lane is exact.
func inRange(x uint64, lo, hi byte) uint64 {
	sign := ^x
	if lo >= 0x80 {
		sign = x
		lo, hi = lo-0x80, hi-0x80
	}
	t := x & low7
	ge := t + ones*(0x80-uint64(lo))
	le := t + ones*uint64(0x7f-hi)
	return ge &^ le & sign & high
}

// nonZero sets bit 7 of every lane of x that is not zero.
func nonZero(x uint64) uint64 {
	return ((x&low7)+low7 | x) & high
}

// widen turns a high-bit mask into a full byte mask: 0x80 -> 0xff.
func widen(m uint64) uint64 {
	return m | (m - m>>7)
}

func add(x, k uint64) uint64 {
	return ((x &^ high) + (k &^ high)) ^ ((x ^ k) & high)
}

func sub(x, k uint64) uint64 {
	return ((x | high) - (k &^ high)) ^ ((x ^ ^k) & high)
}
