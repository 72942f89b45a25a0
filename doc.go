// Package vecalign asserts that a pointer is aligned strictly enough to be
// viewed as a pointer to another type.
//
// SIMD kernels for complex and float32 arithmetic assume their operands sit
// on 16, 32 or 64-byte boundaries, while Go only guarantees the natural
// alignment of the element type (8 bytes for complex128). vecalign checks the
// assumption at runtime and forwards the pointer unchanged, or fails with a
// dedicated error. It never allocates, copies or moves memory to repair a
// misaligned address.
//
// # Quick Start
//
//	buf := make([]complex128, 1024)
//	lanes, err := vecalign.Assert[vecalign.Complex128x2](&buf[0])
//	if errors.Is(err, vecalign.ErrAlignmentViolation) {
//	    // fall back to an unaligned kernel or abort
//	}
//
// # Alignment Requirements
//
// The required alignment of a target type T is AlignOf[T]: the larger of
// unsafe.Alignof(T) and the boundary T declares through the Aligner
// interface. The lane types Complex64x2 through Float32x16 declare the width
// of the register they fill. VectorAlignment reports the register width of
// the instruction set detected on the running CPU; set VECALIGN_SIMD to force
// a specific one.
//
// # Errors
//
// Every failed assertion returns an *AlignmentError that matches
// ErrAlignmentViolation. A nil pointer is treated as a violation and also
// matches ErrNilPointer. AssertSlice additionally returns a *LengthError
// (ErrLengthMismatch) when the slice does not cover whole target elements.
// MustAssert and MustAssertSlice panic with the same errors.
//
// # Observability
//
// A Checker wraps the assertions with a Logger and a MetricsCollector.
// Violations are logged at error level through a rate limiter:
//
//	metrics := &vecalign.BasicMetricsCollector{}
//	c := vecalign.NewChecker(
//	    vecalign.WithLogger(vecalign.NewJSONLogger(slog.LevelInfo)),
//	    vecalign.WithMetricsCollector(metrics),
//	)
//	lanes, err := vecalign.CheckSlice[vecalign.Float32x16](c, samples)
//
// All functions are stateless apart from the Checker's reporting hooks and
// are safe for concurrent use.
package vecalign
