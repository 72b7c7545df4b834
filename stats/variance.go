package stats

import (
	"fmt"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

// Variances returns the per-dimension population variance of all elements of r.
func Variances[V vector.Vector](r relation.Relation[V]) ([]float64, error) {
	centroid, err := Centroid(r)
	if err != nil {
		return nil, err
	}
	return variances(r, relation.IDsOf(r), centroid)
}

// VariancesOf returns the per-dimension population variance of the elements of
// r under scope, around their own centroid.
func VariancesOf[V vector.Vector](r relation.Relation[V], scope ids.IDs) ([]float64, error) {
	centroid, err := CentroidOf(r, scope)
	if err != nil {
		return nil, err
	}
	return variances(r, scope, centroid)
}

// VariancesAround returns the per-dimension mean squared deviation of the
// elements of r under scope from centroid.
func VariancesAround[V vector.Vector](r relation.Relation[V], centroid vector.Vector, scope ids.IDs) ([]float64, error) {
	if empty(scope) {
		return nil, &relation.ErrEmptyScope{Op: opVariance}
	}
	return variances(r, scope, centroid)
}

// VariancesPerDimension evaluates dimension d against its own scope perDim[d-1]
// and divides by that scope's size. perDim needs one scope per dimension of
// centroid.
func VariancesPerDimension[V vector.Vector](r relation.Relation[V], centroid vector.Vector, perDim []ids.IDs) ([]float64, error) {
	dim := centroid.Dimensionality()
	if len(perDim) < dim {
		return nil, fmt.Errorf("%w: %d scopes for %d dimensions", relation.ErrInvalidArgument, len(perDim), dim)
	}
	out := make([]float64, dim)
	for d := 1; d <= dim; d++ {
		scope := perDim[d-1]
		if empty(scope) {
			return nil, &relation.ErrEmptyScope{Op: opVariance}
		}
		mu := centroid.Value(d)
		for id := range scope.All() {
			v, err := get(r, id, d)
			if err != nil {
				return nil, err
			}
			diff := v.Value(d) - mu
			out[d-1] += diff * diff
		}
		out[d-1] /= float64(scope.Len())
	}
	return out, nil
}

func variances[V vector.Vector](r relation.Relation[V], scope ids.IDs, centroid vector.Vector) ([]float64, error) {
	mu := vector.Values(centroid)
	out := make([]float64, len(mu))
	for id := range scope.All() {
		v, err := get(r, id, len(mu))
		if err != nil {
			return nil, err
		}
		for d := range mu {
			diff := v.Value(d+1) - mu[d]
			out[d] += diff * diff
		}
	}
	divide(out, scope.Len())
	return out, nil
}
