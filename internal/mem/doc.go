// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// AllocAligned returns byte buffers on an arbitrary power-of-two boundary
// (64 bytes by default for AVX-512). AllocMisaligned returns buffers
// offset from a boundary by a fixed skew, which is how tests and examples
// build pointers that must fail an alignment assertion.
package mem
