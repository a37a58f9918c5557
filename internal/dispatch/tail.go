package dispatch

// Split returns how many full chunks of width w fit in n bytes and how many
// bytes are left over for the scalar tail.
func Split(n int, w Width) (full, tail int) {
	return n / int(w), n % int(w)
}

// Body returns the length of the prefix of an n-byte buffer covered by full
// chunks of width w.
func Body(n int, w Width) int {
	return n - n%int(w)
}
