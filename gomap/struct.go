package gomap

type structKind int

const (
	classKind structKind = iota
	abstractKind
	interfaceKind
	valueTypeKind
)

// StructShape materializes structured values into a Go struct reached
// through a pointer. Shapes built with Abstract, Interface or ValueType
// describe types that can be the declared type of a field or element but
// never a materialization target.
type StructShape struct {
	name   string
	kind   structKind
	newFn  func() any
	owns   func(any) bool
	base   *StructShape
	fields []*Field
	byName map[string]*Field
}

func (*StructShape) isShape() {}

func (s *StructShape) String() string {
	return s.name
}

func (s *StructShape) Name() string {
	return s.name
}

// Class returns the shape of *T, constructed with new(T).
func Class[T any](name string) *StructShape {
	return ClassFunc(name, func() *T { return new(T) })
}

// ClassFunc returns the shape of *T, constructed with newFn. A nil newFn
// describes a class without a zero-argument constructor, which only a hook
// can instantiate.
func ClassFunc[T any](name string, newFn func() *T) *StructShape {
	s := &StructShape{
		name:   name,
		kind:   classKind,
		owns:   func(x any) bool { _, ok := x.(*T); return ok },
		byName: map[string]*Field{},
	}
	if newFn != nil {
		s.newFn = func() any { return newFn() }
	}
	return s
}

// Abstract returns the shape of an abstract *T.
func Abstract[T any](name string) *StructShape {
	s := ClassFunc[T](name, nil)
	s.kind = abstractKind
	return s
}

// Interface returns the shape of interface type I.
func Interface[I any](name string) *StructShape {
	return &StructShape{
		name:   name,
		kind:   interfaceKind,
		owns:   func(x any) bool { _, ok := x.(I); return ok },
		byName: map[string]*Field{},
	}
}

// ValueType returns the shape of the struct type T held by value.
func ValueType[T any](name string) *StructShape {
	return &StructShape{
		name:   name,
		kind:   valueTypeKind,
		owns:   func(x any) bool { _, ok := x.(T); return ok },
		byName: map[string]*Field{},
	}
}

// Fields declares fields. A later field with the name of an earlier one
// replaces it.
func (s *StructShape) Fields(fs ...*Field) *StructShape {
	for _, f := range fs {
		if _, ok := s.byName[f.Name]; !ok {
			s.fields = append(s.fields, f)
		} else {
			for i := range s.fields {
				if s.fields[i].Name == f.Name {
					s.fields[i] = f
				}
			}
		}
		s.byName[f.Name] = f
	}
	return s
}

// Derives records that s describes a type derived from base, so that a hook
// may return an s instance where base is requested. Fields are not
// inherited.
func (s *StructShape) Derives(base *StructShape) *StructShape {
	s.base = base
	return s
}

func (s *StructShape) Base() *StructShape {
	return s.base
}

// IsA reports whether s is other or derives from it.
func (s *StructShape) IsA(other *StructShape) bool {
	for ss := s; ss != nil; ss = ss.base {
		if ss == other {
			return true
		}
	}
	return false
}

func (s *StructShape) Instantiable() bool {
	return s.kind == classKind
}

// Owns reports whether x has the native type s describes.
func (s *StructShape) Owns(x any) bool {
	return x != nil && s.owns(x)
}

func (s *StructShape) Field(name string) *Field {
	return s.byName[name]
}

func (s *StructShape) FieldList() []*Field {
	return s.fields
}

func (s *StructShape) construct() (any, bool) {
	if s.newFn == nil {
		return nil, false
	}
	return s.newFn(), true
}

// Field is a named field of a struct shape.
type Field struct {
	Name  string
	Shape Shape

	get func(obj any) (any, error)
	set func(obj, x any) error
}

// Settable reports whether the field can be assigned. Fields without a
// setter may still be filled when they hold a live List or Bag.
func (f *Field) Settable() bool {
	return f.set != nil
}

// Prop declares a field of *T with native type F. get or set may be nil; a
// field with neither is ignored during materialization.
func Prop[T, F any](name string, shape Shape, get func(*T) F, set func(*T, F)) *Field {
	f := &Field{Name: name, Shape: shape}
	if get != nil {
		f.get = func(obj any) (any, error) {
			o, ok := obj.(*T)
			if !ok {
				return nil, newError(ErrTypeMismatch, "field %s is declared on %s, not %T", name, typeName[*T](), obj)
			}
			return get(o), nil
		}
	}
	if set != nil {
		f.set = func(obj, x any) error {
			o, ok := obj.(*T)
			if !ok {
				return newError(ErrTypeMismatch, "field %s is declared on %s, not %T", name, typeName[*T](), obj)
			}
			if x == nil {
				var zero F
				set(o, zero)
				return nil
			}
			v, ok := x.(F)
			if !ok {
				return newError(ErrTypeMismatch, "cannot assign %T to field %s of type %s", x, name, typeName[F]())
			}
			set(o, v)
			return nil
		}
	}
	return f
}
