package gomap

import (
	"strconv"

	"github.com/signadot/go-edm/debug"
	"github.com/signadot/go-edm/value"
)

type config struct {
	hook Hook
}

type Option func(*config)

func WithHook(h Hook) Option {
	return func(c *config) { c.hook = h }
}

// Materialize converts v into the native type s describes. Null yields nil
// for nullable, struct and collection shapes.
//
// Structured values are materialized at most once per call and requested
// shape: a value reachable along several paths, including cyclic ones,
// yields the same object each time it is requested as the same shape. A
// value requested as two different shapes yields one object per shape. Materialization is not transactional; on error, objects
// built so far stay populated as far as they got.
func Materialize(v *value.Value, s Shape, opts ...Option) (any, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	m := &materializer{hook: cfg.hook, cache: map[cacheKey]any{}}
	return m.materialize(v, s, "")
}

// MaterializeAs is Materialize for a shape whose native type is T.
func MaterializeAs[T any](v *value.Value, s Shape, opts ...Option) (T, error) {
	var zero T
	x, err := Materialize(v, s, opts...)
	if err != nil || x == nil {
		return zero, err
	}
	t, ok := x.(T)
	if !ok {
		return zero, newError(ErrTypeMismatch, "%s produced %T, not %s", s, x, typeName[T]())
	}
	return t, nil
}

type materializer struct {
	hook  Hook
	cache map[cacheKey]any
}

type cacheKey struct {
	v *value.Value
	s *StructShape
}

func (m *materializer) materialize(v *value.Value, s Shape, path string) (any, error) {
	if v == nil {
		v = value.Null()
	}
	switch s := s.(type) {
	case *PrimitiveShape:
		if err := leafOnly(v, s); err != nil {
			return nil, atPath(err, path)
		}
		if v.IsNull() {
			if s.nullable {
				return nil, nil
			}
			return nil, atPath(unsupported(v, s.name), path)
		}
		x, err := s.conv(v)
		return x, atPath(err, path)
	case *NullableShape:
		if v.IsNull() {
			return nil, nil
		}
		x, err := m.materialize(v, s.inner, path)
		if err != nil || x == nil {
			return nil, err
		}
		x, err = s.wrap(x)
		return x, atPath(err, path)
	case *EnumShape:
		if err := leafOnly(v, s); err != nil {
			return nil, atPath(err, path)
		}
		x, err := s.convert(v)
		return x, atPath(err, path)
	case *CollectionShape:
		return m.collection(v, s, path)
	case *StructShape:
		return m.structure(v, s, path)
	default:
		return nil, &MaterializeError{FieldPath: path, Message: "no shape", Err: ErrUnsupportedTargetShape}
	}
}

func leafOnly(v *value.Value, s Shape) error {
	if v.Kind == value.CollectionKind || v.Kind == value.StructuredKind {
		return kindMismatch(v, s)
	}
	return nil
}

func kindMismatch(v *value.Value, s Shape) *MaterializeError {
	return newError(ErrKindShapeMismatch, "cannot materialize %s value as %s", v.Kind, s)
}

func (m *materializer) collection(v *value.Value, s *CollectionShape, path string) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	elems, err := m.elements(v, s, path)
	if err != nil {
		return nil, err
	}
	x, err := s.build(elems)
	return x, atPath(err, path)
}

func (m *materializer) elements(v *value.Value, s *CollectionShape, path string) ([]any, error) {
	if !s.kind.Supported() {
		return nil, &MaterializeError{
			FieldPath: path,
			Message:   "cannot materialize into " + s.String() + ": collection targets must be ReadOnlySequence, MutableList or MutableUnorderedCollection",
			Err:       ErrUnsupportedCollectionTarget,
		}
	}
	if v.Kind != value.CollectionKind {
		return nil, atPath(kindMismatch(v, s), path)
	}
	elems := make([]any, len(v.Values))
	for i, ev := range v.Values {
		x, err := m.materialize(ev, s.elem, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		elems[i] = x
	}
	return elems, nil
}

func (m *materializer) structure(v *value.Value, s *StructShape, path string) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !s.Instantiable() {
		return nil, &MaterializeError{
			FieldPath: path,
			Message:   s.name + " is not an instantiable class",
			Err:       ErrUnsupportedTargetShape,
		}
	}
	if v.Kind != value.StructuredKind {
		return nil, atPath(kindMismatch(v, s), path)
	}
	key := cacheKey{v: v, s: s}
	if obj, ok := m.cache[key]; ok {
		return obj, nil
	}
	obj, shape, populated, err := m.instantiate(v, s, path)
	if err != nil {
		return nil, err
	}
	m.cache[key] = obj
	if debug.Materialize() {
		debug.Logf("materialize %s at %q as %s (populated=%t)\n", value.Sprint(v), path, shape, populated)
	}
	if populated {
		return obj, nil
	}
	seen := make(map[string]struct{}, len(v.Fields))
	for i, name := range v.Fields {
		fp := joinPath(path, name)
		if _, dup := seen[name]; dup {
			return nil, &MaterializeError{
				FieldPath: fp,
				Message:   "property " + strconv.Quote(name) + " appears more than once",
				Err:       ErrDuplicateProperty,
			}
		}
		seen[name] = struct{}{}
		f := shape.Field(name)
		if f == nil {
			if debug.Materialize() {
				debug.Logf("materialize: %s has no field %q\n", shape, name)
			}
			continue
		}
		if err := m.assign(obj, f, v.Values[i], fp); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (m *materializer) instantiate(v *value.Value, s *StructShape, path string) (any, *StructShape, bool, error) {
	if m.hook != nil {
		inst, err := m.hook.TryInstantiate(v, s)
		if err != nil {
			return nil, nil, false, &MaterializeError{FieldPath: path, Message: "hook: " + err.Error(), Err: err}
		}
		if inst.Object != nil {
			shape := inst.Shape
			if shape == nil {
				shape = s
			}
			if !shape.IsA(s) || !shape.Owns(inst.Object) {
				return nil, nil, false, atPath(newError(ErrHookTypeMismatch, "hook returned %T (%s) where %s is required", inst.Object, shape, s), path)
			}
			return inst.Object, shape, inst.Populated, nil
		}
	}
	obj, ok := s.construct()
	if !ok {
		return nil, nil, false, &MaterializeError{
			FieldPath: path,
			Message:   s.name + " has no zero-argument constructor",
			Err:       ErrNotInstantiable,
		}
	}
	return obj, s, false, nil
}

// assign sets field f of obj from v. Fields without a setter are filled in
// place when they hold a live List or Bag, and skipped otherwise.
func (m *materializer) assign(obj any, f *Field, v *value.Value, path string) error {
	if f.set != nil {
		x, err := m.materialize(v, f.Shape, path)
		if err != nil {
			return err
		}
		return atPath(f.set(obj, x), path)
	}
	cs, ok := f.Shape.(*CollectionShape)
	if !ok || f.get == nil || cs.appendTo == nil {
		return nil
	}
	container, err := f.get(obj)
	if err != nil {
		return atPath(err, path)
	}
	if v == nil || v.IsNull() {
		return nil
	}
	elems, err := m.elements(v, cs, path)
	if err != nil {
		return err
	}
	_, err = cs.appendTo(container, elems)
	return atPath(err, path)
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
