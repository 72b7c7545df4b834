package relation

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/vecstat/vector"
)

// TypeInformation describes the elements of a relation.
type TypeInformation interface {
	// Kind returns the semantic kind of the elements.
	Kind() Kind
	String() string
}

// VectorField is implemented by type information of fixed-dimensionality
// vector relations, regardless of their concrete vector representation.
type VectorField interface {
	TypeInformation
	// Dimensionality returns the number of coordinates of every element.
	Dimensionality() int
}

// SimpleTypeInformation describes elements by kind and name only.
type SimpleTypeInformation struct {
	kind Kind
	name string
}

// NewSimpleTypeInformation creates a SimpleTypeInformation.
func NewSimpleTypeInformation(kind Kind, name string) *SimpleTypeInformation {
	return &SimpleTypeInformation{kind: kind, name: name}
}

// Kind implements TypeInformation.
func (t *SimpleTypeInformation) Kind() Kind { return t.kind }

func (t *SimpleTypeInformation) String() string {
	return t.kind.String() + ":" + t.name
}

// VectorFieldTypeInformation describes a relation of vectors of type V with a
// fixed dimensionality, and carries the factory of V.
type VectorFieldTypeInformation[V vector.Vector] struct {
	dim     int
	factory vector.Factory[V]
}

// NewVectorFieldTypeInformation creates the type information of a vector field.
func NewVectorFieldTypeInformation[V vector.Vector](dim int, factory vector.Factory[V]) *VectorFieldTypeInformation[V] {
	return &VectorFieldTypeInformation[V]{dim: dim, factory: factory}
}

// Kind implements TypeInformation.
func (t *VectorFieldTypeInformation[V]) Kind() Kind { return KindVector }

// Dimensionality implements VectorField.
func (t *VectorFieldTypeInformation[V]) Dimensionality() int { return t.dim }

// Factory returns the constructor of V.
func (t *VectorFieldTypeInformation[V]) Factory() vector.Factory[V] { return t.factory }

// NewInstance builds a V from raw coordinates.
func (t *VectorFieldTypeInformation[V]) NewInstance(values []float64) V {
	return t.factory(values)
}

func (t *VectorFieldTypeInformation[V]) String() string {
	return fmt.Sprintf("vectorfield:%s,dim=%d", reflect.TypeFor[V](), t.dim)
}

// Common type information of label relations.
var (
	TypeClassLabel = NewSimpleTypeInformation(KindClassLabel, "label.ClassLabel")
	TypeLabelList  = NewSimpleTypeInformation(KindLabelList, "label.LabelList")
	TypeString     = NewSimpleTypeInformation(KindString, "string")
)
