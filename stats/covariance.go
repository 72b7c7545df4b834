package stats

import (
	"fmt"
	"iter"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
	"gonum.org/v1/gonum/mat"
)

// CovarianceMatrixOf returns the Gram matrix DᵀD of the deviations D of the
// elements under scope from their centroid. The result is not divided by the
// number of elements.
func CovarianceMatrixOf[V vector.Vector](r relation.Relation[V], scope ids.IDs) (*mat.SymDense, error) {
	centroid, err := CentroidOf(r, scope)
	if err != nil {
		return nil, err
	}
	dev, err := deviations(r, scope.All(), scope.Len(), centroid)
	if err != nil {
		return nil, err
	}
	return gram(dev, 1), nil
}

// CovarianceMatrix returns the population covariance matrix of all elements
// of r around their centroid.
func CovarianceMatrix[V vector.Vector](r relation.Relation[V]) (*mat.SymDense, error) {
	centroid, err := Centroid(r)
	if err != nil {
		return nil, err
	}
	return CovarianceMatrixAround(r, centroid)
}

// CovarianceMatrixAround returns DᵀD / N, where D holds the deviations of all N
// elements of r from centroid.
func CovarianceMatrixAround[V vector.Vector](r relation.Relation[V], centroid vector.Vector) (*mat.SymDense, error) {
	n := r.Size()
	if n == 0 {
		return nil, &relation.ErrEmptyScope{Op: opCovariance}
	}
	dev, err := deviations(r, r.IterIDs(), n, centroid)
	if err != nil {
		return nil, err
	}
	return gram(dev, 1/float64(n)), nil
}

// deviations builds the rows×dim matrix of coordinate deviations from centroid
// of the elements yielded by seq.
func deviations[V vector.Vector](r relation.Relation[V], seq iter.Seq[ids.ID], rows int, centroid vector.Vector) (*mat.Dense, error) {
	dim := centroid.Dimensionality()
	if dim == 0 {
		return nil, fmt.Errorf("%w: zero dimensionality", relation.ErrInvalidArgument)
	}
	mu := vector.Values(centroid)
	data := make([]float64, 0, rows*dim)
	i := 0
	for id := range seq {
		if i == rows {
			return nil, fmt.Errorf("%w: scope yielded more than %d ids", relation.ErrInvalidArgument, rows)
		}
		v, err := get(r, id, dim)
		if err != nil {
			return nil, err
		}
		for d := range mu {
			data = append(data, v.Value(d+1)-mu[d])
		}
		i++
	}
	if i != rows {
		return nil, fmt.Errorf("%w: scope yielded %d of %d ids", relation.ErrInvalidArgument, i, rows)
	}
	return mat.NewDense(rows, dim, data), nil
}

// gram returns alpha·DᵀD as a symmetric matrix.
func gram(dev *mat.Dense, alpha float64) *mat.SymDense {
	_, dim := dev.Dims()
	cov := mat.NewSymDense(dim, nil)
	cov.SymOuterK(alpha, dev.T())
	return cov
}
