package vecalign

import "github.com/hupe1980/vecalign/internal/simd"

// Lane types for SIMD complex and float32 arithmetic. Each declares the
// alignment an aligned load of the full lane needs.
type (
	// Complex64x2 is two complex64 values, one 128-bit register.
	Complex64x2 [2]complex64
	// Complex64x4 is four complex64 values, one 256-bit register.
	Complex64x4 [4]complex64
	// Complex128x2 is two complex128 values, one 256-bit register.
	Complex128x2 [2]complex128
	// Complex128x4 is four complex128 values, one 512-bit register.
	Complex128x4 [4]complex128
	// Float32x4 is four float32 values, one 128-bit register.
	Float32x4 [4]float32
	// Float32x8 is eight float32 values, one 256-bit register.
	Float32x8 [8]float32
	// Float32x16 is sixteen float32 values, one 512-bit register.
	Float32x16 [16]float32
)

func (Complex64x2) RequiredAlignment() uintptr  { return 16 }
func (Complex64x4) RequiredAlignment() uintptr  { return 32 }
func (Complex128x2) RequiredAlignment() uintptr { return 32 }
func (Complex128x4) RequiredAlignment() uintptr { return 64 }
func (Float32x4) RequiredAlignment() uintptr    { return 16 }
func (Float32x8) RequiredAlignment() uintptr    { return 32 }
func (Float32x16) RequiredAlignment() uintptr   { return 64 }

// VectorAlignment returns the register width in bytes of the SIMD instruction
// set selected for this CPU (8 when no SIMD path is available). Buffers
// handed to vector kernels on this machine must be aligned at least this
// strictly.
func VectorAlignment() uintptr {
	return simd.VectorAlignment()
}

// ActiveISA returns the name of the SIMD instruction set selected for this
// CPU, honoring the VECALIGN_SIMD override.
func ActiveISA() string {
	return simd.ActiveISA().String()
}
