package gomap

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/go-edm/value"
)

// Shape describes a native Go type values can be materialized into. The
// implementations are *PrimitiveShape, *NullableShape, *EnumShape,
// *CollectionShape and *StructShape.
type Shape interface {
	String() string
	isShape()
}

// PrimitiveShape converts leaf values to a Go scalar type.
type PrimitiveShape struct {
	name     string
	nullable bool
	conv     func(*value.Value) (any, error)
}

func (*PrimitiveShape) isShape() {}

func (s *PrimitiveShape) String() string {
	return s.name
}

func primitive[T any](name string, conv func(*value.Value) (T, error)) *PrimitiveShape {
	return &PrimitiveShape{
		name: name,
		conv: func(v *value.Value) (any, error) {
			x, err := conv(v)
			if err != nil {
				return nil, err
			}
			return x, nil
		},
	}
}

var (
	Int8   = signed[int8]("SByte")
	Int16  = signed[int16]("Int16")
	Int32  = signed[int32]("Int32")
	Int64  = signed[int64]("Int64")
	Uint8  = unsigned[uint8]("Byte")
	Uint16 = unsigned[uint16]("UInt16")
	Uint32 = unsigned[uint32]("UInt32")
	Uint64 = unsigned[uint64]("UInt64")

	Float32 = primitive("Single", toFloat32)
	Float64 = primitive("Double", toFloat64)
	Decimal = primitive("Decimal", toDecimal)

	String = primitive("String", func(v *value.Value) (string, error) {
		return same(v, value.StringKind, "String", v.String)
	})
	Bool = primitive("Boolean", func(v *value.Value) (bool, error) {
		return same(v, value.BooleanKind, "Boolean", v.Bool)
	})
	Bytes = nullable(primitive("Binary", func(v *value.Value) ([]byte, error) {
		return same(v, value.BinaryKind, "Binary", slices.Clone(v.Bytes))
	}))
	GUID = primitive("Guid", func(v *value.Value) (uuid.UUID, error) {
		return same(v, value.GuidKind, "Guid", v.GUID)
	})
	DateTimeOffset = primitive("DateTimeOffset", func(v *value.Value) (time.Time, error) {
		return same(v, value.DateTimeOffsetKind, "DateTimeOffset", v.Time)
	})
	Date = primitive("Date", func(v *value.Value) (time.Time, error) {
		return same(v, value.DateKind, "Date", v.Time)
	})
	TimeOfDay = primitive("TimeOfDay", func(v *value.Value) (time.Duration, error) {
		return same(v, value.TimeOfDayKind, "TimeOfDay", v.Duration)
	})
	Duration = primitive("TimeSpan", func(v *value.Value) (time.Duration, error) {
		return same(v, value.DurationKind, "TimeSpan", v.Duration)
	})
)

func nullable(s *PrimitiveShape) *PrimitiveShape {
	s.nullable = true
	return s
}

func unsupported(v *value.Value, target string) *MaterializeError {
	return newError(ErrUnsupportedConversion, "cannot convert %s value to %s", v.Kind, target)
}

func same[T any](v *value.Value, k value.Kind, target string, x T) (T, error) {
	if v.Kind != k {
		var zero T
		return zero, unsupported(v, target)
	}
	return x, nil
}

func signed[T int8 | int16 | int32 | int64](name string) *PrimitiveShape {
	return primitive(name, func(v *value.Value) (T, error) {
		if v.Kind != value.IntegerKind {
			return 0, unsupported(v, name)
		}
		i := v.Int64
		if int64(T(i)) != i {
			return 0, newError(ErrOverflow, "value %d overflows %s", i, name)
		}
		return T(i), nil
	})
}

func unsigned[T uint8 | uint16 | uint32 | uint64](name string) *PrimitiveShape {
	return primitive(name, func(v *value.Value) (T, error) {
		if v.Kind != value.IntegerKind {
			return 0, unsupported(v, name)
		}
		i := v.Int64
		if i < 0 || uint64(T(i)) != uint64(i) {
			return 0, newError(ErrOverflow, "value %d overflows %s", i, name)
		}
		return T(i), nil
	})
}

// toFloat32 saturates to an infinity of the same sign when the magnitude
// exceeds the float32 range.
func toFloat32(v *value.Value) (float32, error) {
	var f float64
	switch v.Kind {
	case value.IntegerKind:
		return float32(v.Int64), nil
	case value.FloatingKind:
		f = v.Float64
	default:
		return 0, unsupported(v, "Single")
	}
	switch {
	case f > math.MaxFloat32:
		return float32(math.Inf(1)), nil
	case f < -math.MaxFloat32:
		return float32(math.Inf(-1)), nil
	}
	return float32(f), nil
}

func toFloat64(v *value.Value) (float64, error) {
	switch v.Kind {
	case value.IntegerKind:
		return float64(v.Int64), nil
	case value.FloatingKind:
		return v.Float64, nil
	default:
		return 0, unsupported(v, "Double")
	}
}

func toDecimal(v *value.Value) (decimal.Decimal, error) {
	switch v.Kind {
	case value.DecimalKind:
		return v.Decimal, nil
	case value.IntegerKind:
		return decimal.NewFromInt(v.Int64), nil
	case value.FloatingKind:
		if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
			return decimal.Zero, newError(ErrUnsupportedConversion, "cannot convert %v to Decimal", v.Float64)
		}
		return decimal.NewFromFloat(v.Float64), nil
	default:
		return decimal.Zero, unsupported(v, "Decimal")
	}
}

// NullableShape wraps a shape whose native type T cannot represent null.
// Its native type is *T and null materializes as a nil *T.
type NullableShape struct {
	inner Shape
	wrap  func(any) (any, error)
}

func (*NullableShape) isShape() {}

func (s *NullableShape) String() string {
	return "Nullable<" + s.inner.String() + ">"
}

func (s *NullableShape) Inner() Shape {
	return s.inner
}

// Nullable returns the nullable form of inner, whose native type must be T.
func Nullable[T any](inner Shape) *NullableShape {
	return &NullableShape{
		inner: inner,
		wrap: func(x any) (any, error) {
			t, ok := x.(T)
			if !ok {
				return nil, newError(ErrTypeMismatch, "%s produced %T, not %s", inner, x, typeName[T]())
			}
			return &t, nil
		},
	}
}
