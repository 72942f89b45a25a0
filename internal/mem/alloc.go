// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// AllocAligned allocates a byte slice of the given size whose first element
// sits on an address divisible by align. align must be a power of two.
//
// Note: This function over-allocates by align bytes to find an aligned offset.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int, align uintptr) []byte {
	if size <= 0 {
		return nil
	}
	if align == 0 || align&(align-1) != 0 {
		panic("mem: alignment must be a power of two")
	}

	buf := make([]byte, size+int(align))

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (align - (addr & (align - 1))) & (align - 1)

	return buf[offset : offset+uintptr(size)]
}

// AllocMisaligned allocates a byte slice of the given size whose first
// element sits exactly skew bytes past an align boundary. It produces
// deliberately misaligned buffers for exercising alignment checks.
func AllocMisaligned(size int, align, skew uintptr) []byte {
	if size <= 0 {
		return nil
	}

	buf := AllocAligned(size+int(align), align)
	skew &= align - 1

	return buf[skew : skew+uintptr(size)]
}

// AllocAlignedSlice allocates n elements of T starting on an align boundary.
// align must be a power of two no smaller than unsafe.Alignof(T).
func AllocAlignedSlice[T any](n int, align uintptr) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	if align < unsafe.Alignof(zero) {
		align = unsafe.Alignof(zero)
	}

	byteSlice := AllocAligned(n*size, align)
	ptr := unsafe.Pointer(&byteSlice[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)    //nolint:gosec // unsafe is required for memory alignment
}
