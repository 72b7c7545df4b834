package relation

import (
	"fmt"
	"iter"

	"github.com/hupe1980/vecstat/ids"
)

// stringView exposes the string form of the elements of another relation.
type stringView struct {
	inner Untyped
}

// ConvertToStringView returns a Relation[string] over the elements of r. Elements
// are rendered with their String method when they have one; r is not copied.
func ConvertToStringView(r Untyped) Relation[string] {
	if s, ok := r.(Relation[string]); ok {
		return s
	}
	return &stringView{inner: r}
}

func (v *stringView) Size() int { return v.inner.Size() }

func (v *stringView) IterIDs() iter.Seq[ids.ID] { return v.inner.IterIDs() }

func (v *stringView) TypeInfo() TypeInformation { return TypeString }

func (v *stringView) Get(id ids.ID) (string, error) {
	o, err := v.inner.GetAny(id)
	if err != nil {
		return "", err
	}
	switch x := o.(type) {
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprint(x), nil
	}
}

func (v *stringView) GetAny(id ids.ID) (any, error) {
	return v.Get(id)
}
