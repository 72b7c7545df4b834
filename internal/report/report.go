// Package report summarizes the vector relation of a database, overall and
// per class label.
package report

import (
	"context"
	"fmt"
	"reflect"
	"slices"

	"github.com/hupe1980/vecstat"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/labels"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/stats"
	"github.com/hupe1980/vecstat/vector"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Options configures Build.
type Options struct {
	// ByClass adds one summary per class label.
	ByClass bool
	// Workers bounds the number of class summaries computed at once.
	// Values below 1 mean one.
	Workers int
}

// Summary holds the statistics of one set of vectors.
type Summary struct {
	Class          string      `json:"class,omitempty" yaml:"class,omitempty"`
	Count          int         `json:"count" yaml:"count"`
	Dimensionality int         `json:"dimensionality" yaml:"dimensionality"`
	Centroid       []float64   `json:"centroid" yaml:"centroid,flow"`
	Variances      []float64   `json:"variances" yaml:"variances,flow"`
	Min            []float64   `json:"min" yaml:"min,flow"`
	Max            []float64   `json:"max" yaml:"max,flow"`
	Covariance     [][]float64 `json:"covariance" yaml:"covariance,flow"`
}

// Report is the result of Build.
type Report struct {
	Relation   string    `json:"relation" yaml:"relation"`
	ObjectType string    `json:"object_type" yaml:"object_type"`
	Overall    Summary   `json:"overall" yaml:"overall"`
	Classes    []Summary `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Build summarizes the vector relation of db.
func Build[V vector.Vector](ctx context.Context, a *vecstat.Analyzer[V], db relation.Database, opts Options) (*Report, error) {
	r, err := relation.RelationOf[V](db, relation.KindVector)
	if err != nil {
		return nil, err
	}

	typ, err := a.BaseObjectType(ctx, r)
	if err != nil {
		return nil, err
	}

	overall, err := summarize(ctx, a, r, nil)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Relation:   r.TypeInfo().String(),
		ObjectType: typeName(typ),
		Overall:    overall,
	}
	if !opts.ByClass {
		return rep, nil
	}

	view, err := labels.GuessClassLabelRepresentation(db)
	if err != nil {
		return nil, err
	}
	members, err := labels.ClassMembers(view)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	slices.Sort(names)

	rep.Classes = make([]Summary, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, name := range names {
		g.Go(func() error {
			s, err := summarize(gctx, a, r, members[name])
			if err != nil {
				return fmt.Errorf("class %q: %w", name, err)
			}
			s.Class = name
			rep.Classes[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rep, nil
}

// summarize computes the statistics of r restricted to scope, or of all of r
// when scope is nil.
func summarize[V vector.Vector](ctx context.Context, a *vecstat.Analyzer[V], r relation.Relation[V], scope *ids.BitmapIDs) (Summary, error) {
	var (
		centroid, lo, hi V
		variances        []float64
		cov              *mat.SymDense
		err              error
		count            = r.Size()
	)

	if scope == nil {
		if centroid, err = a.Centroid(ctx, r); err != nil {
			return Summary{}, err
		}
		if variances, err = a.Variances(ctx, r); err != nil {
			return Summary{}, err
		}
		if lo, hi, err = a.MinMax(ctx, r); err != nil {
			return Summary{}, err
		}
		if cov, err = a.CovarianceMatrix(ctx, r); err != nil {
			return Summary{}, err
		}
	} else {
		count = scope.Len()
		if centroid, err = a.CentroidOf(ctx, r, scope); err != nil {
			return Summary{}, err
		}
		if variances, err = a.VariancesOf(ctx, r, scope); err != nil {
			return Summary{}, err
		}
		if lo, hi, err = a.MinMaxOf(ctx, r, scope); err != nil {
			return Summary{}, err
		}
		if cov, err = a.CovarianceMatrixOf(ctx, r, scope); err != nil {
			return Summary{}, err
		}
		cov.ScaleSym(1/float64(count), cov)
	}

	return Summary{
		Count:          count,
		Dimensionality: stats.Dimensionality(r),
		Centroid:       vector.Values(centroid),
		Variances:      variances,
		Min:            vector.Values(lo),
		Max:            vector.Values(hi),
		Covariance:     rows(cov),
	}, nil
}

func rows(m *mat.SymDense) [][]float64 {
	n := m.SymmetricDim()
	out := make([][]float64, n)
	for i := range n {
		out[i] = make([]float64, n)
		for j := range n {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
