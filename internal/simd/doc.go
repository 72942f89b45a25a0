// Package simd detects the SIMD instruction set of the running CPU.
//
// # Supported Platforms
//
//   - x86-64: AVX-512, AVX2
//   - ARM64: NEON, SVE2
//
// Detection runs once at init through golang.org/x/sys/cpu. Set
// VECALIGN_SIMD to generic, neon, sve2, avx2 or avx512 to force a specific
// ISA; an override the CPU cannot execute is ignored.
//
// The register width of the active ISA is the strictest alignment that
// aligned vector loads and stores impose, see VectorAlignment.
package simd
