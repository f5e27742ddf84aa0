package matchgo

import (
	"log/slog"

	"github.com/hupe1980/matchgo/resource"
	"github.com/hupe1980/matchgo/score"
)

type options struct {
	scorer    score.Scorer
	flags     score.Flags
	logger    *Logger
	metrics   MetricsCollector
	admission *resource.Controller
}

// Option configures Matcher construction.
type Option func(*options)

// WithScorer sets the scorer used for every query.
//
// If nil is passed, score.PathScorer is used.
func WithScorer(s score.Scorer) Option {
	return func(o *options) {
		if s == nil {
			s = score.PathScorer{}
		}
		o.scorer = s
	}
}

// WithAlwaysShowDotFiles makes dot-files eligible for matching even when the
// abbreviation does not explicitly target a dot-prefixed component.
func WithAlwaysShowDotFiles() Option {
	return func(o *options) {
		o.flags.AlwaysShowDotFiles = true
	}
}

// WithNeverShowDotFiles unconditionally excludes dot-files from results.
// Wins over WithAlwaysShowDotFiles when both are set.
func WithNeverShowDotFiles() Option {
	return func(o *options) {
		o.flags.NeverShowDotFiles = true
	}
}

// WithMaxConcurrentQueries bounds how many Rank calls may run at once.
// A call that arrives while all slots are busy fails with
// ErrResourceExhausted instead of queueing.
func WithMaxConcurrentQueries(n int64) Option {
	return func(o *options) {
		o.admission = resource.NewController(resource.Config{
			MaxConcurrentQueries: n,
		})
	}
}

// WithResourceController sets a shared resource controller, e.g. one also
// throttling provider rescans. Pass nil to disable admission control.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.admission = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		scorer:  score.PathScorer{},
		metrics: NoopMetricsCollector{},
		logger:  NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
