package vecalign

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// MaxAlignment is the largest alignment an Aligner may declare: one 4 KiB page.
const MaxAlignment uintptr = 4096

// Aligner is implemented by types that need a stronger alignment than the Go
// compiler gives them. unsafe.Alignof never exceeds the machine word, so SIMD
// lane types declare their boundary through this interface.
//
// RequiredAlignment must use a value receiver and return a constant power of
// two no larger than MaxAlignment. It is called once per type; the result is
// cached.
type Aligner interface {
	RequiredAlignment() uintptr
}

var (
	alignerType = reflect.TypeFor[Aligner]()

	// layouts caches the resolved layout per type (reflect.Type -> *layout).
	layouts sync.Map
)

type layout struct {
	align uintptr
	name  string
}

// AlignOf returns the alignment in bytes that a *T must satisfy: the larger of
// unsafe.Alignof(T) and the alignment T declares through Aligner.
//
// AlignOf panics with ErrInvalidAlignment if T declares an alignment that is
// zero, not a power of two or above MaxAlignment, or if T implements Aligner
// only on its pointer type.
func AlignOf[T any]() uintptr {
	return layoutOf[T]().align
}

func layoutOf[T any]() *layout {
	// Going through *T never boxes a T value.
	t := reflect.TypeOf((*T)(nil)).Elem()
	if l, ok := layouts.Load(t); ok {
		return l.(*layout)
	}

	l, _ := layouts.LoadOrStore(t, resolveLayout[T](t))
	return l.(*layout)
}

func resolveLayout[T any](t reflect.Type) *layout {
	var zero T

	l := &layout{align: unsafe.Alignof(zero), name: t.String()}
	if t.Kind() == reflect.Interface {
		return l
	}

	switch {
	case t.Implements(alignerType):
		declared := any(zero).(Aligner).RequiredAlignment()
		if !isPowerOfTwo(declared) || declared > MaxAlignment {
			panic(fmt.Errorf("%w: %s declares %d", ErrInvalidAlignment, l.name, declared))
		}
		l.align = max(l.align, declared)
	case reflect.PointerTo(t).Implements(alignerType):
		panic(fmt.Errorf("%w: %s implements Aligner on a pointer receiver", ErrInvalidAlignment, l.name))
	}

	return l
}

// IsAligned reports whether addr is a multiple of align. align must be a
// power of two.
func IsAligned(addr, align uintptr) bool {
	return addr&(align-1) == 0
}

// Misalignment returns addr modulo align. align must be a power of two.
func Misalignment(addr, align uintptr) uintptr {
	return addr & (align - 1)
}

// Assert returns p reinterpreted as a *T after checking that its address
// satisfies AlignOf[T]. The address is never adjusted: on success the result
// points exactly where p does.
//
// A misaligned or nil p yields a nil pointer and an *AlignmentError matching
// ErrAlignmentViolation. Assert never reads or writes through p.
func Assert[T, S any](p *S) (*T, error) {
	required := AlignOf[T]()

	if p == nil {
		return nil, violation[T, S](0, required, ErrNilPointer)
	}

	addr := uintptr(unsafe.Pointer(p)) //nolint:gosec // address is only inspected
	if !IsAligned(addr, required) {
		return nil, violation[T, S](addr, required, nil)
	}

	return (*T)(unsafe.Pointer(p)), nil //nolint:gosec // alignment verified above
}

// MustAssert is like Assert but panics with the *AlignmentError on failure.
// Use it where proceeding with a misaligned pointer would be undefined
// behavior anyway.
func MustAssert[T, S any](p *S) *T {
	t, err := Assert[T](p)
	if err != nil {
		panic(err)
	}
	return t
}

func violation[T, S any](addr, required uintptr, cause error) *AlignmentError {
	return &AlignmentError{
		Address:  addr,
		Required: required,
		Source:   typeName[S](),
		Target:   typeName[T](),
		cause:    cause,
	}
}

func typeName[T any]() string {
	return layoutOf[T]().name
}

func isPowerOfTwo(n uintptr) bool {
	return n != 0 && n&(n-1) == 0
}
