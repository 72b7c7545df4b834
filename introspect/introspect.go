package introspect

import (
	"reflect"
	"slices"

	"github.com/hupe1980/vecstat/relation"
)

// GuessObjectType returns the dynamic type of the first element of r, or nil
// when r is empty or the element cannot be read.
func GuessObjectType(r relation.Untyped) reflect.Type {
	for id := range r.IterIDs() {
		o, err := r.GetAny(id)
		if err != nil {
			return nil
		}
		return reflect.TypeOf(o)
	}
	return nil
}

// BaseObjectType inspects every element of r and returns the most specific
// type all of them can be treated as, which may be an interface. It returns
// nil for an empty relation. A nil h uses an empty hierarchy.
func BaseObjectType(r relation.Untyped, h *Hierarchy) (reflect.Type, error) {
	var candidates []reflect.Type
	first := true
	for id := range r.IterIDs() {
		o, err := r.GetAny(id)
		if err != nil {
			return nil, err
		}
		t := reflect.TypeOf(o)
		if t == nil {
			t = anyType
		}
		if first {
			candidates = append(candidates, t)
			first = false
			continue
		}
		candidates = widen(h, candidates, t)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return mostSpecific(h, candidates)[0], nil
}

// widen replaces every candidate t is not assignable to by its supertypes
// until all remaining candidates accept t.
func widen(h *Hierarchy, candidates []reflect.Type, t reflect.Type) []reflect.Type {
	expanded := make(map[reflect.Type]bool)
	for {
		i := slices.IndexFunc(candidates, func(c reflect.Type) bool {
			return !h.IsAssignable(c, t)
		})
		if i < 0 {
			return candidates
		}
		cand := candidates[i]
		candidates = slices.Delete(candidates, i, i+1)
		expanded[cand] = true
		for _, s := range h.Supertypes(cand) {
			if !expanded[s] && !slices.Contains(candidates, s) {
				candidates = append(candidates, s)
			}
		}
		if len(candidates) == 0 {
			return []reflect.Type{anyType}
		}
	}
}

// mostSpecific drops every candidate that another remaining candidate is
// assignable to.
func mostSpecific(h *Hierarchy, candidates []reflect.Type) []reflect.Type {
	for i := 0; i < len(candidates); {
		cand := candidates[i]
		general := slices.ContainsFunc(candidates, func(o reflect.Type) bool {
			return o != cand && h.IsAssignable(cand, o)
		})
		if general && len(candidates) > 1 {
			candidates = slices.Delete(candidates, i, i+1)
			continue
		}
		i++
	}
	return candidates
}
