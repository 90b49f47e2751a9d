package gomap

import (
	"github.com/signadot/go-edm/value"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type EnumMember struct {
	Name  string
	Value int64
}

// EnumShape materializes integer and enum values into a Go integer type.
// Enums are open: any value that fits the underlying type is accepted,
// whether or not a member declares it.
type EnumShape struct {
	name    string
	edmType string
	members []EnumMember
	conv    func(int64) (any, bool)
}

func (*EnumShape) isShape() {}

func (s *EnumShape) String() string {
	return s.name
}

// Enum returns the shape of the Go enum type E.
func Enum[E integer](name string, members ...EnumMember) *EnumShape {
	return &EnumShape{
		name:    name,
		members: members,
		conv: func(i int64) (any, bool) {
			var zero E
			unsigned := zero-1 > zero
			if unsigned && i < 0 {
				return nil, false
			}
			e := E(i)
			if unsigned {
				return e, uint64(e) == uint64(i)
			}
			return e, int64(e) == i
		},
	}
}

// ForType restricts the shape to enum values tagged with the given EDM
// enum type. Integer values are still accepted.
func (s *EnumShape) ForType(qualifiedName string) *EnumShape {
	s.edmType = qualifiedName
	return s
}

// Member returns the member declaring i, if any.
func (s *EnumShape) Member(i int64) (EnumMember, bool) {
	for _, m := range s.members {
		if m.Value == i {
			return m, true
		}
	}
	return EnumMember{}, false
}

func (s *EnumShape) convert(v *value.Value) (any, error) {
	switch v.Kind {
	case value.IntegerKind:
	case value.EnumKind:
		if s.edmType != "" && v.Type != "" && v.Type != s.edmType {
			return nil, newError(ErrUnsupportedConversion, "cannot convert enum %s to %s", v.Type, s.name)
		}
	default:
		return nil, unsupported(v, s.name)
	}
	x, ok := s.conv(v.Int64)
	if !ok {
		return nil, newError(ErrOverflow, "value %d overflows %s", v.Int64, s.name)
	}
	return x, nil
}
