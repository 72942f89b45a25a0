package vecalign

import (
	"context"
	"log/slog"
	"sync/atomic"
	"unsafe"

	"golang.org/x/time/rate"
)

// Checker runs alignment assertions and reports each one to a logger and a
// metrics collector. It is safe for concurrent use. A nil *Checker is valid
// and behaves like the bare Assert functions.
type Checker struct {
	logger     *Logger
	metrics    MetricsCollector
	limiter    *rate.Limiter
	suppressed atomic.Int64
}

// NewChecker creates a Checker configured by opts.
func NewChecker(opts ...Option) *Checker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Checker{
		logger:  o.logger,
		metrics: o.metricsCollector,
		limiter: rate.NewLimiter(o.logLimit, o.logBurst),
	}
}

// Check is Assert with reporting through c.
func Check[T, S any](c *Checker, p *S) (*T, error) {
	t, err := Assert[T](p)
	if c != nil {
		c.observe(typeName[T](), AlignOf[T](), uintptr(unsafe.Pointer(p)), err) //nolint:gosec // address is only reported
	}
	return t, err
}

// CheckSlice is AssertSlice with reporting through c.
func CheckSlice[T, S any](c *Checker, s []S) ([]T, error) {
	t, err := AssertSlice[T](s)
	if c != nil {
		c.observe(typeName[T](), AlignOf[T](), uintptr(unsafe.Pointer(unsafe.SliceData(s))), err) //nolint:gosec // address is only reported
	}
	return t, err
}

func (c *Checker) observe(target string, required, addr uintptr, err error) {
	c.metrics.RecordCheck(target, required, err)

	ctx := context.Background()
	if err == nil {
		if c.logger.Enabled(ctx, slog.LevelDebug) {
			c.logger.WithTarget(target).LogCheck(ctx, addr, required)
		}
		return
	}

	if !c.limiter.Allow() {
		c.suppressed.Add(1)
		return
	}
	c.logger.WithTarget(target).LogViolation(ctx, err, c.suppressed.Swap(0))
}
