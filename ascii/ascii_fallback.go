package ascii

import "math/bits"

// convertCaseGo is the byte-at-a-time form of convertChunk.
func convertCaseGo(b []byte, lo, hi byte, c Case) {
	for i, ch := range b {
		if ch-lo > hi-lo {
			continue
		}
		if c == Upper {
			b[i] = ch - caseDelta
		} else {
			b[i] = ch + caseDelta
		}
	}
}

func equalFoldGo[T string | []byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if ca-'a' <= 'z'-'a' {
			ca -= caseDelta
		}
		if cb-'a' <= 'z'-'a' {
			cb -= caseDelta
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	// use all go tricks to make this fast
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if b&mask != 0 {
			return pos + i
		}
	}
	return -1
}
