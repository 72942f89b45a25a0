//go:build amd64

package simd

import "golang.org/x/sys/cpu"

// x/sys/cpu already clears the AVX flags when the OS does not save the
// extended register state, so these imply usable 256/512-bit loads.
func init() {
	hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	hasAVX512F = cpu.X86.HasAVX512F
	hasAVX512BW = cpu.X86.HasAVX512BW
	initCapabilities()
}
