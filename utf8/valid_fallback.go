package utf8

// validGo checks s one sequence at a time. For every lead byte it derives how
// many continuation bytes must follow and the range the first of them must
// fall in, which is where overlongs, surrogates and out of range code points
// are rejected.
func validGo[T string | []byte](s T) bool {
	for i := 0; i < len(s); {
		c := s[i]
		if c < 0x80 {
			i++
			continue
		}

		n := 0
		lo, hi := byte(0x80), byte(0xbf)
		switch {
		case c < 0xc2:
			// stray continuation byte, or an overlong 2-byte lead
			return false
		case c < 0xe0:
			n = 2
		case c < 0xf0:
			n = 3
			if c == 0xe0 {
				lo = 0xa0
			} else if c == 0xed {
				hi = 0x9f
			}
		case c < 0xf5:
			n = 4
			if c == 0xf0 {
				lo = 0x90
			} else if c == 0xf4 {
				hi = 0x8f
			}
		default:
			return false
		}

		if len(s)-i < n {
			return false
		}
		if b := s[i+1]; b < lo || b > hi {
			return false
		}
		for j := i + 2; j < i+n; j++ {
			if s[j]&0xc0 != 0x80 {
				return false
			}
		}
		i += n
	}
	return true
}

// runeCountGo counts the bytes of s that are not continuation bytes.
func runeCountGo[T string | []byte](s T) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i]&0xc0 != 0x80 {
			n++
		}
	}
	return n
}
