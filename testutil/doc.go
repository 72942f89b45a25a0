// Package testutil provides testing utilities for vecalign.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for filling buffers, CRC32C
// checksums for verifying that memory was left untouched, and address
// helpers for pointer and slice views.
//
// # Random Buffers
//
//	rng := testutil.NewRNG(seed)
//	buf := make([]byte, 256)
//	rng.FillBytes(buf)
//
// # Untouched Memory
//
//	before := testutil.Checksum(buf)
//	// ... call code that must not write ...
//	after := testutil.Checksum(buf)
package testutil
