package vecalign

import (
	"time"

	"golang.org/x/time/rate"
)

// Default violation log budget: a burst of 10, then one line per second.
const (
	DefaultLogBurst = 10
	DefaultLogEvery = time.Second
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	logLimit         rate.Limit
	logBurst         int
}

// Option configures a Checker.
type Option func(*options)

// WithLogger sets the logger violations are reported to.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the collector every check is recorded with.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogRate limits how often violations are logged. Violations beyond the
// budget are counted and reported with the next line that gets through.
// Use rate.Inf to log every violation.
func WithLogRate(limit rate.Limit, burst int) Option {
	return func(o *options) {
		o.logLimit = limit
		o.logBurst = max(burst, 1)
	}
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		logLimit:         rate.Every(DefaultLogEvery),
		logBurst:         DefaultLogBurst,
	}
}
