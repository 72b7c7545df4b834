package report

import (
	"context"
	"testing"

	"github.com/hupe1980/vecstat"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/testutil"
	"github.com/hupe1980/vecstat/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labeled(t *testing.T, names []string, rows ...[]float64) *relation.MemoryDatabase {
	t.Helper()
	cr := relation.NewMemoryRelation[label.ClassLabel](relation.TypeClassLabel)
	for i, n := range names {
		require.NoError(t, cr.Add(ids.ID(i), label.NewClassLabel(n)))
	}
	return relation.NewMemoryDatabase(testutil.Relation(rows...), cr)
}

func TestBuild_Overall(t *testing.T) {
	db := relation.NewMemoryDatabase(testutil.Relation([]float64{0, 0}, []float64{2, 0}, []float64{2, 2}, []float64{0, 2}))
	a := vecstat.NewAnalyzer[vector.Float64]()

	rep, err := Build(context.Background(), a, db, Options{})
	require.NoError(t, err)

	assert.Equal(t, "vector.Float64", rep.ObjectType)
	assert.Equal(t, 4, rep.Overall.Count)
	assert.Equal(t, 2, rep.Overall.Dimensionality)
	assert.Equal(t, []float64{1, 1}, rep.Overall.Centroid)
	assert.Equal(t, []float64{0, 0}, rep.Overall.Min)
	assert.Equal(t, []float64{2, 2}, rep.Overall.Max)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, rep.Overall.Covariance)
	assert.Empty(t, rep.Classes)
}

func TestBuild_ByClass(t *testing.T) {
	db := labeled(t, []string{"b", "a", "b", "a"},
		[]float64{10, 10}, []float64{0, 0}, []float64{12, 14}, []float64{2, 0})

	mc := &vecstat.BasicMetricsCollector{}
	a := vecstat.NewAnalyzer[vector.Float64](vecstat.WithMetricsCollector(mc))

	rep, err := Build(context.Background(), a, db, Options{ByClass: true, Workers: 2})
	require.NoError(t, err)
	require.Len(t, rep.Classes, 2)

	ca, cb := rep.Classes[0], rep.Classes[1]
	assert.Equal(t, "a", ca.Class)
	assert.Equal(t, 2, ca.Count)
	assert.Equal(t, []float64{1, 0}, ca.Centroid)
	assert.Equal(t, [][]float64{{1, 0}, {0, 0}}, ca.Covariance)

	assert.Equal(t, "b", cb.Class)
	assert.Equal(t, []float64{11, 12}, cb.Centroid)
	assert.Equal(t, []float64{10, 10}, cb.Min)
	assert.Equal(t, []float64{12, 14}, cb.Max)
	assert.Equal(t, [][]float64{{1, 2}, {2, 4}}, cb.Covariance)

	// overall plus two classes, four statistics each
	assert.Equal(t, int64(12), mc.GetStats().StatisticCount)
	assert.Zero(t, mc.GetStats().StatisticErrors)
}

func TestBuild_ClassCovarianceMatchesSubRelation(t *testing.T) {
	rng := testutil.NewRNG(7)
	db := rng.LabeledDatabase(90, 3, 3, 0.5)
	a := vecstat.NewAnalyzer[vector.Float64]()

	rep, err := Build(context.Background(), a, db, Options{ByClass: true, Workers: 4})
	require.NoError(t, err)
	require.Len(t, rep.Classes, 3)

	vr, err := relation.RelationOf[vector.Float64](db, relation.KindVector)
	require.NoError(t, err)

	for c, s := range rep.Classes {
		assert.Equal(t, 30, s.Count)

		var rows []vector.Float64
		for i := c; i < 90; i += 3 {
			v, err := vr.Get(ids.ID(i))
			require.NoError(t, err)
			rows = append(rows, v)
		}
		sub := testutil.MustVectorRelation(3, rows...)
		want, err := a.CovarianceMatrix(context.Background(), sub)
		require.NoError(t, err)

		for i := range 3 {
			for j := range 3 {
				assert.InDelta(t, want.At(i, j), s.Covariance[i][j], 1e-9)
			}
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	a := vecstat.NewAnalyzer[vector.Float64]()

	t.Run("no vector relation", func(t *testing.T) {
		_, err := Build(context.Background(), a, relation.NewMemoryDatabase(), Options{})
		assert.ErrorIs(t, err, relation.ErrNoSupportedDataType)
	})

	t.Run("no labels", func(t *testing.T) {
		db := relation.NewMemoryDatabase(testutil.Relation([]float64{1}))
		_, err := Build(context.Background(), a, db, Options{ByClass: true})
		assert.ErrorIs(t, err, relation.ErrNoSupportedDataType)
	})

	t.Run("empty relation", func(t *testing.T) {
		db := relation.NewMemoryDatabase(testutil.MustVectorRelation(2))
		_, err := Build(context.Background(), a, db, Options{})
		assert.ErrorIs(t, err, relation.ErrInvalidArgument)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		db := relation.NewMemoryDatabase(testutil.Relation([]float64{1}))
		_, err := Build(ctx, a, db, Options{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
