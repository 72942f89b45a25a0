package vecalign

import (
	"errors"
	"fmt"
)

var (
	// ErrAlignmentViolation is matched by every failed alignment assertion.
	ErrAlignmentViolation = errors.New("runtime alignment assertion failed")

	// ErrNilPointer is the cause of an alignment violation on a nil pointer.
	ErrNilPointer = errors.New("nil pointer")

	// ErrLengthMismatch is returned when a slice's byte length is not a whole
	// number of target elements.
	ErrLengthMismatch = errors.New("slice length is not a multiple of the target element size")

	// ErrInvalidAlignment is the panic value for a malformed Aligner
	// declaration.
	ErrInvalidAlignment = errors.New("invalid alignment declaration")
)

// AlignmentError reports that an address does not satisfy the alignment of
// the target type.
//
// errors.Is(err, ErrAlignmentViolation) holds for every AlignmentError. A nil
// input additionally matches ErrNilPointer.
type AlignmentError struct {
	// Address is the numeric address that was checked.
	Address uintptr
	// Required is the alignment of the target type in bytes.
	Required uintptr
	// Source and Target name the pointee types, as formatted by %T.
	Source string
	Target string
	cause  error
}

func (e *AlignmentError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: %s as %s: %v", ErrAlignmentViolation, e.Source, e.Target, e.cause)
	}
	return fmt.Sprintf("%v: %s at %#x as %s requires %d-byte alignment (off by %d)",
		ErrAlignmentViolation, e.Source, e.Address, e.Target, e.Required, e.Misalignment())
}

// Misalignment returns how many bytes Address lies past the previous
// Required boundary.
func (e *AlignmentError) Misalignment() uintptr {
	return Misalignment(e.Address, e.Required)
}

// Is reports whether target is ErrAlignmentViolation.
func (e *AlignmentError) Is(target error) bool {
	return target == ErrAlignmentViolation
}

func (e *AlignmentError) Unwrap() error { return e.cause }

// LengthError reports that a slice cannot be viewed as whole elements of the
// target type.
type LengthError struct {
	// Bytes is the byte length of the source slice.
	Bytes uintptr
	// ElemSize is the size of the target element in bytes.
	ElemSize uintptr
	Source   string
	Target   string
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: %d bytes of %s as %s (element size %d)",
		ErrLengthMismatch, e.Bytes, e.Source, e.Target, e.ElemSize)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }
