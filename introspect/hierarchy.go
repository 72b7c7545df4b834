package introspect

import (
	"reflect"
	"slices"
	"sync"
)

var anyType = reflect.TypeFor[any]()

// Hierarchy is a graph of declared supertype edges between Go types. It is
// safe for concurrent use.
type Hierarchy struct {
	mu     sync.RWMutex
	supers map[reflect.Type][]reflect.Type
}

// NewHierarchy creates an empty hierarchy. Embedding is still honored.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{supers: make(map[reflect.Type][]reflect.Type)}
}

// Register declares supertypes of t. Repeated registrations append; duplicate
// edges are ignored.
func (h *Hierarchy) Register(t reflect.Type, supertypes ...reflect.Type) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, s := range supertypes {
		if s != nil && s != t && !slices.Contains(h.supers[t], s) {
			h.supers[t] = append(h.supers[t], s)
		}
	}
}

// Supertypes returns the direct supertypes of t: registered types first, then
// embedded struct types. Embedding in a pointer type yields pointer
// supertypes. A type without declared supertypes returns [any]; any itself
// has none.
func (h *Hierarchy) Supertypes(t reflect.Type) []reflect.Type {
	if t == nil || t == anyType {
		return nil
	}
	var out []reflect.Type
	if h != nil {
		h.mu.RLock()
		out = slices.Clone(h.supers[t])
		h.mu.RUnlock()
	}
	for _, e := range embedded(t) {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return []reflect.Type{anyType}
	}
	return out
}

// IsAssignable reports whether a value of type t can be treated as cand: cand
// is t, any, an interface t implements, or a transitive supertype of t.
func (h *Hierarchy) IsAssignable(cand, t reflect.Type) bool {
	if cand == nil || t == nil {
		return false
	}
	if cand == t || cand == anyType {
		return true
	}
	if cand.Kind() == reflect.Interface && t.Implements(cand) {
		return true
	}
	seen := map[reflect.Type]bool{t: true}
	stack := h.Supertypes(t)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s == cand {
			return true
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		stack = append(stack, h.Supertypes(s)...)
	}
	return false
}

func embedded(t reflect.Type) []reflect.Type {
	ptr := false
	if t.Kind() == reflect.Pointer {
		ptr = true
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	var out []reflect.Type
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		base := ft
		if base.Kind() == reflect.Pointer {
			base = base.Elem()
		}
		if base.Kind() != reflect.Struct {
			continue
		}
		if ptr && ft.Kind() != reflect.Pointer {
			ft = reflect.PointerTo(ft)
		}
		out = append(out, ft)
	}
	return out
}
