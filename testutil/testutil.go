package testutil

import (
	"hash/crc32"
	"math/rand"
	"sync"
	"unsafe"
)

// crc32cTable is pre-computed for the CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uintptr returns a pseudo-random address-sized value.
func (r *RNG) Uintptr() uintptr {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uintptr(r.rand.Uint64())
}

// FillBytes fills dst with random bytes.
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// FillComplex128 fills dst with random complex values in [-1, 1) on both axes.
func (r *RNG) FillComplex128(dst []complex128) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = complex(r.rand.Float64()*2-1, r.rand.Float64()*2-1)
	}
}

// Checksum computes the CRC32-Castagnoli checksum of buf.
func Checksum(buf []byte) uint32 {
	return crc32.Checksum(buf, crc32cTable)
}

// Bytes returns the memory backing s as a byte slice without copying.
func Bytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero))) //nolint:gosec // test-only view
}

// Addr returns the numeric address of p.
func Addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p)) //nolint:gosec // address comparison only
}

// SliceAddr returns the numeric address of the first element of s, or 0
// for an empty slice.
func SliceAddr[T any](s []T) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s))) //nolint:gosec // address comparison only
}
