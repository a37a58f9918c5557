package dispatch

import "golang.org/x/sys/cpu"

func detect() (Width, Level) {
	if cpu.X86.HasAVX2 {
		return W32, LevelAVX2
	}
	// SSE2 is part of the amd64 baseline.
	return W16, LevelSSE2
}
