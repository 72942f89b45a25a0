package vecalign

import "unsafe"

// AssertSlice returns s reinterpreted as a []T after checking that its first
// element satisfies AlignOf[T] and that its length covers a whole number of T
// elements. The result aliases s; capacity is truncated to whole elements.
//
// An empty s returns nil, nil since there is no address to check.
func AssertSlice[T, S any](s []S) ([]T, error) {
	if len(s) == 0 {
		return nil, nil
	}

	var (
		zs S
		zt T
	)

	data := unsafe.SliceData(s)
	if _, err := Assert[T](data); err != nil {
		return nil, err
	}

	srcSize := unsafe.Sizeof(zs)
	dstSize := unsafe.Sizeof(zt)
	n := uintptr(len(s)) * srcSize

	if dstSize == 0 || n%dstSize != 0 {
		return nil, &LengthError{
			Bytes:    n,
			ElemSize: dstSize,
			Source:   typeName[S](),
			Target:   typeName[T](),
		}
	}

	ptr := (*T)(unsafe.Pointer(data)) //nolint:gosec // alignment verified by Assert

	return unsafe.Slice(ptr, uintptr(cap(s))*srcSize/dstSize)[:n/dstSize], nil //nolint:gosec // length verified above
}

// MustAssertSlice is like AssertSlice but panics on failure.
func MustAssertSlice[T, S any](s []S) []T {
	t, err := AssertSlice[T](s)
	if err != nil {
		panic(err)
	}
	return t
}
