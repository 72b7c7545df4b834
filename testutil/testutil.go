package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates num vectors with coordinates in [0, 1).
func (r *RNG) UniformVectors(num, dim int) []vector.Float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([]vector.Float64, num)
	for i := range num {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}
	return vectors
}

// GaussianVectors generates num vectors with coordinates drawn from
// N(mean, stddev²).
func (r *RNG) GaussianVectors(num, dim int, mean, stddev float64) []vector.Float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([]vector.Float64, num)
	for i := range num {
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = mean + r.rand.NormFloat64()*stddev
		}
		vectors[i] = vec
	}
	return vectors
}

// ClusteredVectors generates num vectors around clusters random centers in
// [-10, 10)^dim. Vector i belongs to cluster i%clusters.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) ([]vector.Float64, []int) {
	centers := r.UniformVectors(clusters, dim)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	vectors := make([]vector.Float64, num)
	assign := make([]int, num)
	for i := range num {
		c := i % clusters
		vec := data[i*dim : (i+1)*dim]
		for j := range vec {
			vec[j] = centers[c][j]*20 - 10 + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
		assign[i] = c
	}
	return vectors, assign
}

// Float64Relation returns a relation of num uniform vectors under the
// identifiers 0..num-1.
func (r *RNG) Float64Relation(num, dim int) *relation.MemoryRelation[vector.Float64] {
	return MustVectorRelation(dim, r.UniformVectors(num, dim)...)
}

// LabeledDatabase returns a database holding a clustered vector relation and
// a class label relation naming each vector's cluster "c<i>".
func (r *RNG) LabeledDatabase(num, dim, clusters int, spread float64) *relation.MemoryDatabase {
	vecs, assign := r.ClusteredVectors(num, dim, clusters, spread)
	vr := MustVectorRelation(dim, vecs...)
	lr := relation.NewMemoryRelation[label.ClassLabel](relation.TypeClassLabel)
	for i, c := range assign {
		if err := lr.Add(ids.ID(i), label.NewClassLabel(fmt.Sprintf("c%d", c))); err != nil {
			panic(err)
		}
	}
	return relation.NewMemoryDatabase(vr, lr)
}

// MustVectorRelation builds a vector.Float64 relation from rows and panics on
// a dimensionality mismatch.
func MustVectorRelation(dim int, rows ...vector.Float64) *relation.MemoryRelation[vector.Float64] {
	r, err := relation.NewVectorRelation(dim, vector.NewFloat64, rows...)
	if err != nil {
		panic(err)
	}
	return r
}

// Rows converts literal coordinate rows into vectors.
func Rows(rows ...[]float64) []vector.Float64 {
	out := make([]vector.Float64, len(rows))
	for i, row := range rows {
		out[i] = vector.NewFloat64(row)
	}
	return out
}

// Relation builds a relation from literal coordinate rows, taking the
// dimensionality from the first row.
func Relation(rows ...[]float64) *relation.MemoryRelation[vector.Float64] {
	dim := 0
	if len(rows) > 0 {
		dim = len(rows[0])
	}
	return MustVectorRelation(dim, Rows(rows...)...)
}
