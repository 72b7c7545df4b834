package relation

import (
	"fmt"
	"slices"
	"sync"
)

// Database is a store of relations of different kinds over a shared
// identifier space.
type Database interface {
	// Relation returns the relation of the given kind. It fails with an error
	// matching ErrNoSupportedDataType when the database holds none.
	Relation(kind Kind) (Untyped, error)
}

// MemoryDatabase is an in-memory Database with at most one relation per kind.
type MemoryDatabase struct {
	mu        sync.RWMutex
	relations map[Kind]Untyped
}

// NewMemoryDatabase creates a database holding the given relations, keyed by
// the kind of their type information.
func NewMemoryDatabase(rels ...Untyped) *MemoryDatabase {
	db := &MemoryDatabase{relations: make(map[Kind]Untyped)}
	for _, r := range rels {
		db.Register(r)
	}
	return db
}

// Register stores r, replacing any relation of the same kind.
func (db *MemoryDatabase) Register(r Untyped) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.relations[r.TypeInfo().Kind()] = r
}

// Relation implements Database.
func (db *MemoryDatabase) Relation(kind Kind) (Untyped, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	r, ok := db.relations[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no %s relation", ErrNoSupportedDataType, kind)
	}
	return r, nil
}

// Kinds returns the kinds present, in ascending order.
func (db *MemoryDatabase) Kinds() []Kind {
	db.mu.RLock()
	defer db.mu.RUnlock()
	kinds := make([]Kind, 0, len(db.relations))
	for k := range db.relations {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// RelationOf returns the relation of the given kind typed as Relation[O]. A
// relation with a different element type is reported as ErrNoSupportedDataType.
func RelationOf[O any](db Database, kind Kind) (Relation[O], error) {
	u, err := db.Relation(kind)
	if err != nil {
		return nil, err
	}
	r, ok := u.(Relation[O])
	if !ok {
		return nil, fmt.Errorf("%w: %s relation has type information %v", ErrNoSupportedDataType, kind, u.TypeInfo())
	}
	return r, nil
}
