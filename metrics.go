package vecalign

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"
)

// MetricsCollector defines an interface for collecting alignment check
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus.
type MetricsCollector interface {
	// RecordCheck is called after each checked assertion. target names the
	// target type, required is its alignment, err is nil if the check passed.
	RecordCheck(target string, required uintptr, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCheck(string, uintptr, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
//
// Besides counters it remembers every distinct misalignment residue
// (address mod required) it has seen. A single recurring residue usually
// points at a header or offset the allocator adds in front of the data.
type BasicMetricsCollector struct {
	CheckCount       atomic.Int64
	ViolationCount   atomic.Int64
	NilPointerCount  atomic.Int64
	LengthErrorCount atomic.Int64

	mu       sync.Mutex
	residues *roaring.Bitmap
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(_ string, _ uintptr, err error) {
	b.CheckCount.Add(1)
	if err == nil {
		return
	}

	if errors.Is(err, ErrLengthMismatch) {
		b.LengthErrorCount.Add(1)
		return
	}

	b.ViolationCount.Add(1)
	if errors.Is(err, ErrNilPointer) {
		b.NilPointerCount.Add(1)
		return
	}

	var ae *AlignmentError
	if errors.As(err, &ae) {
		b.mu.Lock()
		if b.residues == nil {
			b.residues = roaring.New()
		}
		// Residues are below MaxAlignment, so they fit a uint32.
		b.residues.Add(uint32(ae.Misalignment()))
		b.mu.Unlock()
	}
}

// Residues returns the sorted distinct misalignment residues recorded so far.
func (b *BasicMetricsCollector) Residues() []uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.residues == nil {
		return nil
	}
	return b.residues.ToArray()
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	var distinct uint64
	if b.residues != nil {
		distinct = b.residues.GetCardinality()
	}
	b.mu.Unlock()

	return BasicMetricsStats{
		CheckCount:       b.CheckCount.Load(),
		ViolationCount:   b.ViolationCount.Load(),
		NilPointerCount:  b.NilPointerCount.Load(),
		LengthErrorCount: b.LengthErrorCount.Load(),
		DistinctResidues: distinct,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	CheckCount       int64
	ViolationCount   int64
	NilPointerCount  int64
	LengthErrorCount int64
	DistinctResidues uint64
}
