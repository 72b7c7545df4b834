package vecstat

import "github.com/hupe1980/vecstat/introspect"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	hierarchy        *introspect.Hierarchy
}

// Option configures an Analyzer.
type Option func(*options)

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. A nil collector disables
// metrics.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithHierarchy sets the type hierarchy used by BaseObjectType.
func WithHierarchy(h *introspect.Hierarchy) Option {
	return func(o *options) {
		o.hierarchy = h
	}
}

func defaultOptions() options {
	return options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		hierarchy:        introspect.NewHierarchy(),
	}
}
