package pgsource

import "github.com/hupe1980/vecstat"

// Option configures Load.
type Option func(*options)

type options struct {
	table       string
	idColumn    string
	embedColumn string
	labelColumn string
	limit       int
	logger      *vecstat.Logger
}

func defaultOptions() options {
	return options{
		table:       "embeddings",
		idColumn:    "id",
		embedColumn: "embedding",
		labelColumn: "label",
		logger:      vecstat.NoopLogger(),
	}
}

// WithTable sets the table to read, optionally schema qualified
// ("public.embeddings").
func WithTable(table string) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithColumns sets the id, embedding and label column names. An empty label
// column skips labels.
func WithColumns(id, embedding, label string) Option {
	return func(o *options) {
		o.idColumn = id
		o.embedColumn = embedding
		o.labelColumn = label
	}
}

// WithLimit caps the number of rows read. Zero means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *vecstat.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecstat.NoopLogger()
		}
		o.logger = l
	}
}
