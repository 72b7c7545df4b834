package stats

import (
	"iter"
	"math"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

// MinMax returns the per-dimension minimum and maximum over all elements of r.
// Dimensions of an empty relation keep their seeds, math.MaxFloat64 for the
// minimum and -math.MaxFloat64 for the maximum.
func MinMax[V vector.Vector](r relation.Relation[V]) (V, V, error) {
	return minMax(r, r.IterIDs())
}

// MinMaxOf is MinMax restricted to the elements under scope.
func MinMaxOf[V vector.Vector](r relation.Relation[V], scope ids.IDs) (V, V, error) {
	if empty(scope) {
		return minMax(r, func(func(ids.ID) bool) {})
	}
	return minMax(r, scope.All())
}

func minMax[V vector.Vector](r relation.Relation[V], seq iter.Seq[ids.ID]) (V, V, error) {
	var zero V
	vf, err := AssumeVectorField(r)
	if err != nil {
		return zero, zero, err
	}
	dim := vf.Dimensionality()
	mins := make([]float64, dim)
	maxs := make([]float64, dim)
	for d := range dim {
		mins[d] = math.MaxFloat64
		maxs[d] = -math.MaxFloat64
	}
	for id := range seq {
		v, err := get(r, id, dim)
		if err != nil {
			return zero, zero, err
		}
		for d := range dim {
			x := v.Value(d + 1)
			mins[d] = math.Min(mins[d], x)
			maxs[d] = math.Max(maxs[d], x)
		}
	}
	return vf.NewInstance(mins), vf.NewInstance(maxs), nil
}
