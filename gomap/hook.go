package gomap

import "github.com/signadot/go-edm/value"

// Instance is a hook's answer. The zero Instance declines.
type Instance struct {
	// Object is the instance to use. It must be owned by Shape.
	Object any
	// Shape describes Object. It must be, or derive from, the requested
	// shape; nil means the requested shape.
	Shape *StructShape
	// Populated means Object is complete and no properties are assigned.
	Populated bool
}

func Decline() Instance {
	return Instance{}
}

// Hook supplies instances for structured values, such as derived types
// chosen by the value's declared type. It is consulted once per structured
// value that is not already materialized in the current call.
type Hook interface {
	TryInstantiate(v *value.Value, requested *StructShape) (Instance, error)
}

type HookFunc func(v *value.Value, requested *StructShape) (Instance, error)

func (f HookFunc) TryInstantiate(v *value.Value, requested *StructShape) (Instance, error) {
	return f(v, requested)
}

// TypeHook instantiates the shape registered for a value's declared type
// when that shape derives from the requested one, and declines otherwise.
type TypeHook map[string]*StructShape

func (h TypeHook) TryInstantiate(v *value.Value, requested *StructShape) (Instance, error) {
	s, ok := h[v.Type]
	if !ok || s == requested || !s.IsA(requested) {
		return Decline(), nil
	}
	obj, ok := s.construct()
	if !ok {
		return Decline(), nil
	}
	return Instance{Object: obj, Shape: s}, nil
}
