package vector

import (
	"strconv"
	"strings"
)

// Vector is a fixed-dimensionality numeric vector.
type Vector interface {
	// Dimensionality returns the number of coordinates.
	Dimensionality() int
	// Value returns the coordinate at the 1-based dimension dim.
	Value(dim int) float64
}

// Factory builds a vector of a concrete representation from raw coordinates.
type Factory[V Vector] func(values []float64) V

// Values copies the coordinates of v into a new slice.
func Values(v Vector) []float64 {
	out := make([]float64, v.Dimensionality())
	for d := range out {
		out[d] = v.Value(d + 1)
	}
	return out
}

// Format renders v as a space separated coordinate list.
func Format(v Vector) string {
	var sb strings.Builder
	for d := 1; d <= v.Dimensionality(); d++ {
		if d > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v.Value(d), 'g', -1, 64))
	}
	return sb.String()
}

// Float64 is a dense float64 vector.
type Float64 []float64

// NewFloat64 copies values into a new Float64. It is the Factory of Float64.
func NewFloat64(values []float64) Float64 {
	out := make(Float64, len(values))
	copy(out, values)
	return out
}

// Dimensionality implements Vector.
func (v Float64) Dimensionality() int { return len(v) }

// Value implements Vector.
func (v Float64) Value(dim int) float64 { return v[dim-1] }

func (v Float64) String() string { return Format(v) }

// Float32 is a dense float32 vector, the storage format of embedding tables.
type Float32 []float32

// NewFloat32 converts values into a new Float32. It is the Factory of Float32.
func NewFloat32(values []float64) Float32 {
	out := make(Float32, len(values))
	for i, x := range values {
		out[i] = float32(x)
	}
	return out
}

// Dimensionality implements Vector.
func (v Float32) Dimensionality() int { return len(v) }

// Value implements Vector.
func (v Float32) Value(dim int) float64 { return float64(v[dim-1]) }

func (v Float32) String() string { return Format(v) }
