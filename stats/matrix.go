package stats

import (
	"fmt"

	"github.com/hupe1980/vecstat/relation"
	"gonum.org/v1/gonum/mat"
)

// CentroidOfMatrix returns the mean column of data, whose rows are dimensions
// and whose columns are samples.
func CentroidOfMatrix(data mat.Matrix) (*mat.VecDense, error) {
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, &relation.ErrEmptyScope{Op: opCentroid}
	}
	c := make([]float64, rows)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			c[i] += data.At(i, j)
		}
	}
	divide(c, cols)
	return mat.NewVecDense(rows, c), nil
}

// CovarianceOfMatrix returns C·Cᵀ / n, where C is data centered by its mean
// column and n is the number of columns (samples).
func CovarianceOfMatrix(data mat.Matrix) (*mat.SymDense, error) {
	centroid, err := CentroidOfMatrix(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCovariance, err)
	}
	rows, cols := data.Dims()
	centered := mat.NewDense(rows, cols, nil)
	centered.Apply(func(i, j int, v float64) float64 {
		return v - centroid.AtVec(i)
	}, data)

	cov := mat.NewSymDense(rows, nil)
	cov.SymOuterK(1/float64(cols), centered)
	return cov, nil
}
