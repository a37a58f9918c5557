package dispatch

import "golang.org/x/sys/cpu"

// The lane kernels are portable Go, so every arm64 host runs W16. ASIMD is
// mandatory on ARMv8-A and only decides which level is reported.
func detect() (Width, Level) {
	level := LevelGeneric
	if cpu.ARM64.HasASIMD {
		level = LevelNEON
	}
	return W16, level
}
