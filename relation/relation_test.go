package relation

import (
	"errors"
	"slices"
	"testing"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRelation_AddGet(t *testing.T) {
	r := NewMemoryRelation[string](TypeString)
	require.NoError(t, r.Add(7, "seven"))
	require.NoError(t, r.Add(3, "three"))

	assert.Equal(t, 2, r.Size())
	assert.Equal(t, []ids.ID{7, 3}, slices.Collect(r.IterIDs()))

	s, err := r.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "three", s)

	_, err = r.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)

	err = r.Add(7, "again")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestMemoryRelation_DimensionCheck(t *testing.T) {
	r := NewMemoryRelation[vector.Float64](NewVectorFieldTypeInformation(2, vector.NewFloat64))
	require.NoError(t, r.Add(0, vector.Float64{1, 2}))

	err := r.Add(1, vector.Float64{1, 2, 3})
	var dm *ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewVectorRelation(t *testing.T) {
	r, err := NewVectorRelation(2, vector.NewFloat64, vector.Float64{1, 2}, vector.Float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, r.Size())
	assert.Equal(t, []ids.ID{0, 1}, r.IDs().Slice())

	vf, ok := r.TypeInfo().(VectorField)
	require.True(t, ok)
	assert.Equal(t, 2, vf.Dimensionality())
	assert.Equal(t, KindVector, vf.Kind())
	assert.Contains(t, vf.String(), "dim=2")

	_, err = NewVectorRelation(3, vector.NewFloat64, vector.Float64{1})
	assert.Error(t, err)
}

func TestVectorFieldTypeInformation_NewInstance(t *testing.T) {
	ti := NewVectorFieldTypeInformation(3, vector.NewFloat32)
	v := ti.NewInstance([]float64{1, 2, 3})
	assert.Equal(t, vector.Float32{1, 2, 3}, v)
	assert.NotNil(t, ti.Factory())
}

func TestObjectsAndCollect(t *testing.T) {
	r := NewMemoryRelation[string](TypeString)
	require.NoError(t, r.Add(1, "a"))
	require.NoError(t, r.Add(2, "b"))

	all, err := Collect[string](r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, all)

	n := 0
	for s, err := range Objects[string](r) {
		require.NoError(t, err)
		assert.NotEmpty(t, s)
		n++
		break
	}
	assert.Equal(t, 1, n)
}

type brokenRelation struct {
	*MemoryRelation[string]
}

func (b brokenRelation) Get(id ids.ID) (string, error) {
	return "", errors.New("boom")
}

func TestCollect_PropagatesError(t *testing.T) {
	inner := NewMemoryRelation[string](TypeString)
	require.NoError(t, inner.Add(1, "a"))

	_, err := Collect[string](brokenRelation{inner})
	assert.EqualError(t, err, "boom")
}

func TestMemoryDatabase(t *testing.T) {
	strs := NewMemoryRelation[string](TypeString)
	db := NewMemoryDatabase(strs)

	got, err := db.Relation(KindString)
	require.NoError(t, err)
	assert.Same(t, strs, got)

	_, err = db.Relation(KindClassLabel)
	assert.ErrorIs(t, err, ErrNoSupportedDataType)

	assert.Equal(t, []Kind{KindString}, db.Kinds())
}

func TestRelationOf(t *testing.T) {
	labels := NewMemoryRelation[label.ClassLabel](TypeClassLabel)
	require.NoError(t, labels.Add(0, label.NewClassLabel("a")))
	db := NewMemoryDatabase(labels)

	r, err := RelationOf[label.ClassLabel](db, KindClassLabel)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Size())

	_, err = RelationOf[string](db, KindClassLabel)
	assert.ErrorIs(t, err, ErrNoSupportedDataType)

	_, err = RelationOf[string](db, KindString)
	assert.ErrorIs(t, err, ErrNoSupportedDataType)
}

func TestConvertToStringView(t *testing.T) {
	lists := NewMemoryRelation[label.LabelList](TypeLabelList)
	require.NoError(t, lists.Add(4, label.LabelList{"x", "y"}))

	view := ConvertToStringView(lists)
	assert.Equal(t, 1, view.Size())
	assert.Equal(t, KindString, view.TypeInfo().Kind())

	s, err := view.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "x y", s)

	_, err = view.Get(5)
	assert.ErrorIs(t, err, ErrNotFound)

	ints := NewMemoryRelation[int](NewSimpleTypeInformation(KindObject, "int"))
	require.NoError(t, ints.Add(0, 12))
	s, err = ConvertToStringView(ints).Get(0)
	require.NoError(t, err)
	assert.Equal(t, "12", s)
}

func TestConvertToStringView_StringRelationPassesThrough(t *testing.T) {
	strs := NewMemoryRelation[string](TypeString)
	assert.Same(t, strs, ConvertToStringView(strs))
}

func TestErrors(t *testing.T) {
	empty := &ErrEmptyScope{Op: "centroid"}
	assert.ErrorIs(t, empty, ErrInvalidArgument)
	assert.Equal(t, "cannot compute a centroid, because of empty list of ids", empty.Error())

	nvf := &ErrNotVectorField{Type: TypeString}
	assert.ErrorIs(t, nvf, ErrUnsupportedOperation)
	assert.Contains(t, nvf.Error(), "string")
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "vector", KindVector.String())
	assert.Equal(t, "labellist", KindLabelList.String())
	assert.Equal(t, "invalid", Kind(200).String())
}
