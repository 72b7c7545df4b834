package stats

import (
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

// AssumeVectorField returns the vector field type information of r, or an
// *relation.ErrNotVectorField when r does not declare one for V.
func AssumeVectorField[V vector.Vector](r relation.Relation[V]) (*relation.VectorFieldTypeInformation[V], error) {
	ti := r.TypeInfo()
	vf, ok := ti.(*relation.VectorFieldTypeInformation[V])
	if !ok {
		return nil, &relation.ErrNotVectorField{Type: ti}
	}
	return vf, nil
}

// Dimensionality returns the dimensionality of a vector field relation, or -1
// when r is not a vector field.
func Dimensionality(r relation.Untyped) int {
	vf, ok := r.TypeInfo().(relation.VectorField)
	if !ok {
		return -1
	}
	return vf.Dimensionality()
}
