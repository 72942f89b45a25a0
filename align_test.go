package vecalign

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/hupe1980/vecalign/internal/mem"
	"github.com/hupe1980/vecalign/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type oddAligned struct{}

func (oddAligned) RequiredAlignment() uintptr { return 24 }

type zeroAligned struct{}

func (zeroAligned) RequiredAlignment() uintptr { return 0 }

type hugeAligned struct{}

func (hugeAligned) RequiredAlignment() uintptr { return MaxAlignment * 2 }

// ptrAligned declares its boundary on the pointer type only.
type ptrAligned [2]complex128

func (*ptrAligned) RequiredAlignment() uintptr { return 32 }

// wideField declares less than its natural alignment; the natural one wins.
type wideField struct{ _ uint64 }

func (wideField) RequiredAlignment() uintptr { return 2 }

func TestAlignOf(t *testing.T) {
	assert.Equal(t, uintptr(1), AlignOf[byte]())
	assert.Equal(t, unsafe.Alignof(uint64(0)), AlignOf[uint64]())
	assert.Equal(t, unsafe.Alignof(complex128(0)), AlignOf[complex128]())
	assert.Equal(t, uintptr(16), AlignOf[Complex64x2]())
	assert.Equal(t, uintptr(32), AlignOf[Complex64x4]())
	assert.Equal(t, uintptr(32), AlignOf[Complex128x2]())
	assert.Equal(t, uintptr(64), AlignOf[Complex128x4]())
	assert.Equal(t, uintptr(16), AlignOf[Float32x4]())
	assert.Equal(t, uintptr(32), AlignOf[Float32x8]())
	assert.Equal(t, uintptr(64), AlignOf[Float32x16]())
	assert.Equal(t, unsafe.Alignof(uint64(0)), AlignOf[wideField]())
}

func TestAlignOfInvalidDeclaration(t *testing.T) {
	for name, f := range map[string]func(){
		"odd":             func() { AlignOf[oddAligned]() },
		"zero":            func() { AlignOf[zeroAligned]() },
		"aboveMax":        func() { AlignOf[hugeAligned]() },
		"pointerReceiver": func() { AlignOf[ptrAligned]() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, ErrInvalidAlignment)
			}()
			f()
		})
	}
}

// A pointer-receiver declaration must never let a misaligned address through.
func TestAssertPointerReceiverAligner(t *testing.T) {
	v := mem.AllocAlignedSlice[complex128](4, 32)

	assert.PanicsWithError(t,
		"invalid alignment declaration: vecalign.ptrAligned implements Aligner on a pointer receiver",
		func() { _, _ = Assert[ptrAligned](&v[1]) },
	)
}

func TestAssertDoesNotAllocate(t *testing.T) {
	buf := mem.AllocAligned(256, mem.Alignment)

	assert.Zero(t, testing.AllocsPerRun(100, func() {
		_, _ = Assert[Complex128x4](&buf[0])
	}))
	assert.Zero(t, testing.AllocsPerRun(100, func() {
		_, _ = Assert[Complex64x2](&buf[16])
	}))
	assert.Zero(t, testing.AllocsPerRun(100, func() {
		_ = AlignOf[Float32x4]()
	}))
	assert.Zero(t, testing.AllocsPerRun(100, func() {
		_ = MustAssertSlice[Float32x16](buf)
	}))
}

func TestAlignOfConcurrent(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			if AlignOf[Complex64x4]() != 32 || AlignOf[Float32x8]() != 32 {
				return ErrInvalidAlignment
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned(0, 16))
	assert.True(t, IsAligned(64, 16))
	assert.False(t, IsAligned(65, 16))
	assert.False(t, IsAligned(8, 16))
	assert.True(t, IsAligned(7, 1))

	assert.Equal(t, uintptr(1), Misalignment(65, 16))
	assert.Equal(t, uintptr(8), Misalignment(24, 16))
	assert.Equal(t, uintptr(0), Misalignment(128, 64))
}

func TestIsAlignedRandom(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 1000; i++ {
		addr := rng.Uintptr()
		for _, align := range []uintptr{1, 2, 4, 8, 16, 32, 64} {
			assert.Equal(t, addr%align == 0, IsAligned(addr, align))
			assert.Equal(t, addr%align, Misalignment(addr, align))
		}
	}
}

func TestAssert(t *testing.T) {
	t.Run("AlignedBufferWeakerTarget", func(t *testing.T) {
		buf := mem.AllocAligned(256, 16)

		p, err := Assert[uint64](&buf[0])
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, testutil.Addr(&buf[0]), testutil.Addr(p))
	})

	t.Run("OffByOne", func(t *testing.T) {
		buf := mem.AllocMisaligned(256, 16, 1)

		p, err := Assert[Complex64x2](&buf[0])
		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrAlignmentViolation)
		assert.NotErrorIs(t, err, ErrNilPointer)

		var ae *AlignmentError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, testutil.Addr(&buf[0]), ae.Address)
		assert.Equal(t, uintptr(16), ae.Required)
		assert.Equal(t, uintptr(1), ae.Misalignment())
		assert.Equal(t, "uint8", ae.Source)
		assert.Equal(t, "vecalign.Complex64x2", ae.Target)
		assert.Contains(t, err.Error(), "runtime alignment assertion failed")
	})

	t.Run("SingleByteTarget", func(t *testing.T) {
		buf := mem.AllocAligned(128, mem.Alignment)

		for i := 0; i < 64; i++ {
			p, err := Assert[byte](&buf[i])
			require.NoError(t, err)
			assert.Equal(t, testutil.Addr(&buf[i]), testutil.Addr(p))
		}
	})

	t.Run("ComplexToLanes", func(t *testing.T) {
		v := mem.AllocAlignedSlice[complex128](16, 32)

		lanes, err := Assert[Complex128x2](&v[0])
		require.NoError(t, err)
		assert.Equal(t, testutil.Addr(&v[0]), testutil.Addr(lanes))

		// complex128 is 16 bytes, so the second element is off a 32-byte boundary.
		_, err = Assert[Complex128x2](&v[1])
		assert.ErrorIs(t, err, ErrAlignmentViolation)

		lanes, err = Assert[Complex128x2](&v[2])
		require.NoError(t, err)
		assert.Equal(t, v[2], lanes[0])
		assert.Equal(t, v[3], lanes[1])
	})

	t.Run("Nil", func(t *testing.T) {
		p, err := Assert[Float32x4]((*float32)(nil))
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrAlignmentViolation)
		assert.ErrorIs(t, err, ErrNilPointer)

		var ae *AlignmentError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, uintptr(16), ae.Required)
		assert.Equal(t, "float32", ae.Source)
	})
}

// Every offset inside a 64-byte aligned buffer is checked against every lane
// type: successes keep the address and honor the alignment, failures carry
// no pointer, and repeating a call gives the same outcome.
func TestAssertOffsets(t *testing.T) {
	buf := mem.AllocAligned(256, mem.Alignment)

	type check func(p *byte) (uintptr, uintptr, error)
	checks := map[string]check{
		"uint32":       assertAddr[uint32],
		"complex128":   assertAddr[complex128],
		"Complex64x2":  assertAddr[Complex64x2],
		"Complex64x4":  assertAddr[Complex64x4],
		"Complex128x2": assertAddr[Complex128x2],
		"Complex128x4": assertAddr[Complex128x4],
		"Float32x16":   assertAddr[Float32x16],
	}

	for name, fn := range checks {
		t.Run(name, func(t *testing.T) {
			for off := 0; off < 64; off++ {
				in := &buf[off]

				got, required, err := fn(in)
				again, _, errAgain := fn(in)
				assert.Equal(t, err == nil, errAgain == nil, "offset %d", off)
				assert.Equal(t, got, again, "offset %d", off)

				if off%int(required) == 0 {
					require.NoError(t, err, "offset %d", off)
					assert.Equal(t, testutil.Addr(in), got)
					assert.True(t, IsAligned(got, required))
				} else {
					require.ErrorIs(t, err, ErrAlignmentViolation, "offset %d", off)
					assert.Zero(t, got)
				}
			}
		})
	}
}

func assertAddr[T any](p *byte) (uintptr, uintptr, error) {
	t, err := Assert[T](p)
	return testutil.Addr(t), AlignOf[T](), err
}

func TestAssertLeavesMemoryUntouched(t *testing.T) {
	rng := testutil.NewRNG(4711)
	buf := mem.AllocAligned(256, mem.Alignment)
	rng.FillBytes(buf)

	before := testutil.Checksum(buf)
	snapshot := append([]byte(nil), buf...)

	for off := 0; off < 64; off++ {
		_, _ = Assert[Complex128x4](&buf[off])
		_, _ = Assert[Float32x4](&buf[off])
		_, _ = Assert[uint64](&buf[off])
	}

	assert.Equal(t, before, testutil.Checksum(buf))
	assert.Equal(t, snapshot, buf)
}

func TestMustAssert(t *testing.T) {
	buf := mem.AllocAligned(128, 32)

	assert.NotPanics(t, func() {
		p := MustAssert[Float32x8](&buf[0])
		assert.Equal(t, testutil.Addr(&buf[0]), testutil.Addr(p))
	})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)

		var ae *AlignmentError
		assert.True(t, errors.As(err, &ae))
		assert.Equal(t, uintptr(4), ae.Misalignment())
	}()
	MustAssert[Float32x8](&buf[4])
}

func BenchmarkAssert(b *testing.B) {
	buf := mem.AllocAligned(128, mem.Alignment)

	b.Run("aligned", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = Assert[Complex128x4](&buf[0])
		}
	})

	b.Run("misaligned", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = Assert[Complex128x4](&buf[8])
		}
	})
}
