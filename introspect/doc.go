// Package introspect infers the element types of heterogeneous relations.
//
// Go has no class hierarchy to walk, so the supertypes of a type come from an
// explicit Hierarchy: types registered with Register, followed by the struct
// types a struct embeds. A type with neither has the single supertype any.
//
//	h := introspect.NewHierarchy()
//	h.Register(reflect.TypeFor[Cat](), reflect.TypeFor[Animal]())
//	base, err := introspect.BaseObjectType(r, h)
package introspect
