package vecstat

import (
	"context"
	"reflect"
	"regexp"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/introspect"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/labels"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/stats"
	"github.com/hupe1980/vecstat/vector"
	"gonum.org/v1/gonum/mat"
)

// Statistic names reported to the logger and the metrics collector.
const (
	OpCentroid          = "centroid"
	OpCentroidMasked    = "centroid_masked"
	OpCovariance        = "covariance"
	OpCovarianceScatter = "covariance_scatter"
	OpVariances         = "variances"
	OpMinMax            = "minmax"
	OpClassLabels       = "class_labels"
	OpLabelMatch        = "label_match"
	OpBaseType          = "base_type"
)

// Analyzer computes statistics over relations of V and reports every call to
// its logger and metrics collector. It holds no state besides its options and
// is safe for concurrent use.
type Analyzer[V vector.Vector] struct {
	opts options
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer[V vector.Vector](optFns ...Option) *Analyzer[V] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Analyzer[V]{opts: opts}
}

// Logger returns the configured logger.
func (a *Analyzer[V]) Logger() *Logger { return a.opts.logger }

// Centroid returns the centroid of all elements of r.
func (a *Analyzer[V]) Centroid(ctx context.Context, r relation.Relation[V]) (V, error) {
	return observe(ctx, a, OpCentroid, r, size(r), func() (V, error) {
		return stats.Centroid(r)
	})
}

// CentroidOf returns the centroid of the elements of r under scope.
func (a *Analyzer[V]) CentroidOf(ctx context.Context, r relation.Relation[V], scope ids.IDs) (V, error) {
	return observe(ctx, a, OpCentroid, r, scopeLen(scope), func() (V, error) {
		return stats.CentroidOf(r, scope)
	})
}

// CentroidMasked returns the centroid of the elements under scope over the
// dimensions selected by mask.
func (a *Analyzer[V]) CentroidMasked(ctx context.Context, r relation.Relation[V], scope ids.IDs, mask *bitset.BitSet) (V, error) {
	return observe(ctx, a, OpCentroidMasked, r, scopeLen(scope), func() (V, error) {
		return stats.CentroidMasked(r, scope, mask)
	})
}

// CovarianceMatrix returns the population covariance matrix of r.
func (a *Analyzer[V]) CovarianceMatrix(ctx context.Context, r relation.Relation[V]) (*mat.SymDense, error) {
	return observe(ctx, a, OpCovariance, r, size(r), func() (*mat.SymDense, error) {
		return stats.CovarianceMatrix(r)
	})
}

// CovarianceMatrixOf returns the unnormalized scatter matrix of the elements
// under scope. Divide by scope.Len() for the covariance.
func (a *Analyzer[V]) CovarianceMatrixOf(ctx context.Context, r relation.Relation[V], scope ids.IDs) (*mat.SymDense, error) {
	return observe(ctx, a, OpCovarianceScatter, r, scopeLen(scope), func() (*mat.SymDense, error) {
		return stats.CovarianceMatrixOf(r, scope)
	})
}

// Variances returns the per-dimension population variances of r.
func (a *Analyzer[V]) Variances(ctx context.Context, r relation.Relation[V]) ([]float64, error) {
	return observe(ctx, a, OpVariances, r, size(r), func() ([]float64, error) {
		return stats.Variances(r)
	})
}

// VariancesOf returns the per-dimension population variances of the elements
// under scope.
func (a *Analyzer[V]) VariancesOf(ctx context.Context, r relation.Relation[V], scope ids.IDs) ([]float64, error) {
	return observe(ctx, a, OpVariances, r, scopeLen(scope), func() ([]float64, error) {
		return stats.VariancesOf(r, scope)
	})
}

type bounds[V vector.Vector] struct{ lo, hi V }

// MinMax returns the per-dimension minimum and maximum of r.
func (a *Analyzer[V]) MinMax(ctx context.Context, r relation.Relation[V]) (V, V, error) {
	b, err := observe(ctx, a, OpMinMax, r, size(r), func() (bounds[V], error) {
		lo, hi, err := stats.MinMax(r)
		return bounds[V]{lo, hi}, err
	})
	return b.lo, b.hi, err
}

// MinMaxOf returns the per-dimension minimum and maximum of the elements
// under scope.
func (a *Analyzer[V]) MinMaxOf(ctx context.Context, r relation.Relation[V], scope ids.IDs) (V, V, error) {
	b, err := observe(ctx, a, OpMinMax, r, scopeLen(scope), func() (bounds[V], error) {
		lo, hi, err := stats.MinMaxOf(r, scope)
		return bounds[V]{lo, hi}, err
	})
	return b.lo, b.hi, err
}

// ClassLabels returns the distinct class labels of db in ascending order.
func (a *Analyzer[V]) ClassLabels(ctx context.Context, db relation.Database) ([]label.ClassLabel, error) {
	return lookup(ctx, a, OpClassLabels, func() ([]label.ClassLabel, int, error) {
		out, err := labels.ClassLabelsOf(db)
		return out, len(out), err
	})
}

// ObjectsByLabelMatch returns the identifiers whose object label fully
// matches pattern.
func (a *Analyzer[V]) ObjectsByLabelMatch(ctx context.Context, db relation.Database, pattern *regexp.Regexp) (*ids.ArrayIDs, error) {
	return lookup(ctx, a, OpLabelMatch, func() (*ids.ArrayIDs, int, error) {
		out, err := labels.ObjectsByLabelMatch(db, pattern)
		if err != nil {
			return nil, 0, err
		}
		return out, out.Len(), nil
	})
}

// BaseObjectType returns the most specific type shared by all elements of r
// under the configured hierarchy.
func (a *Analyzer[V]) BaseObjectType(ctx context.Context, r relation.Untyped) (reflect.Type, error) {
	return lookup(ctx, a, OpBaseType, func() (reflect.Type, int, error) {
		t, err := introspect.BaseObjectType(r, a.opts.hierarchy)
		return t, r.Size(), err
	})
}

func observe[T any, V vector.Vector](ctx context.Context, a *Analyzer[V], op string, r relation.Relation[V], n int, fn func() (T, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	dim := -1
	if r != nil {
		dim = stats.Dimensionality(r)
	}
	start := time.Now()
	out, err := fn()
	a.opts.metricsCollector.RecordStatistic(op, n, time.Since(start), err)
	a.opts.logger.LogStatistic(ctx, op, n, dim, err)
	return out, err
}

func lookup[T any, V vector.Vector](ctx context.Context, a *Analyzer[V], op string, fn func() (T, int, error)) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	start := time.Now()
	out, found, err := fn()
	a.opts.metricsCollector.RecordLookup(op, found, time.Since(start), err)
	a.opts.logger.LogLookup(ctx, op, found, err)
	return out, err
}

func size[V vector.Vector](r relation.Relation[V]) int {
	if r == nil {
		return 0
	}
	return r.Size()
}

func scopeLen(scope ids.IDs) int {
	if scope == nil {
		return 0
	}
	return scope.Len()
}
