package datasource

import (
	"github.com/hupe1980/vecstat"
)

// Option configures parsing and loading.
type Option func(*options)

type options struct {
	separator       string
	classLabelIndex int
	compression     Compression
	detect          bool
	logger          *vecstat.Logger
}

func defaultOptions() options {
	return options{
		classLabelIndex: -1,
		detect:          true,
		logger:          vecstat.NoopLogger(),
	}
}

// WithSeparator splits fields on sep instead of whitespace.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithClassLabelIndex takes field i (0-based over all fields of a line) as the
// class label. A negative index disables class labels.
func WithClassLabelIndex(i int) Option {
	return func(o *options) {
		o.classLabelIndex = i
	}
}

// WithCompression forces the compression of loaded blobs instead of detecting
// it from the name suffix.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.detect = false
	}
}

// WithLogger sets the logger used by Load.
func WithLogger(l *vecstat.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecstat.NoopLogger()
		}
		o.logger = l
	}
}
