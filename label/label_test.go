package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleClassLabel(t *testing.T) {
	a := NewClassLabel("a")
	b := NewClassLabel("b")

	assert.Equal(t, "a", a.String())
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(NewClassLabel("a")))
}

func TestHierarchicalClassLabel(t *testing.T) {
	cat := ParseHierarchicalClassLabel("animal.mammal.cat", ".")
	mammal := ParseHierarchicalClassLabel("animal.mammal", ".")

	assert.Equal(t, 3, cat.Depth())
	assert.Equal(t, "animal.mammal.cat", cat.String())
	assert.Equal(t, 1, cat.Compare(mammal))
	assert.Equal(t, -1, mammal.Compare(cat))
	assert.Equal(t, 0, cat.Compare(ParseHierarchicalClassLabel("animal.mammal.cat", ".")))
}

func TestCompare_MixedImplementations(t *testing.T) {
	h := ParseHierarchicalClassLabel("b", ".")
	s := NewClassLabel("a")

	assert.Equal(t, 1, h.Compare(s))
	assert.Equal(t, -1, s.Compare(h))
}

func TestLabelList(t *testing.T) {
	l := LabelList{"point", "outlier"}

	assert.Equal(t, "point outlier", l.String())
	assert.True(t, l.Contains("outlier"))
	assert.False(t, l.Contains("inlier"))
	assert.Equal(t, "", LabelList{}.String())
	assert.False(t, LabelList{}.Contains(""))
}
