package value

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ToAny converts v to plain Go values: nil, int, float64,
// decimal.Decimal, string, bool, []byte, uuid.UUID, time.Time,
// time.Duration, []any and map[string]any. Enum values become their
// numeric value. ToAny does not terminate on cyclic values.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case NullKind:
		return nil
	case IntegerKind, EnumKind:
		return int(v.Int64)
	case FloatingKind:
		return v.Float64
	case DecimalKind:
		return v.Decimal
	case StringKind:
		return v.String
	case BooleanKind:
		return v.Bool
	case BinaryKind:
		return v.Bytes
	case GuidKind:
		return v.GUID
	case DateTimeOffsetKind, DateKind:
		return v.Time
	case TimeOfDayKind, DurationKind:
		return v.Duration
	case CollectionKind:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = ToAny(e)
		}
		return res
	case StructuredKind:
		res := make(map[string]any, len(v.Fields))
		for i, f := range v.Fields {
			if _, ok := res[f]; ok {
				continue
			}
			res[f] = ToAny(v.Values[i])
		}
		return res
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values, as produced by ToAny or by expression
// engines and decoders, back to a value tree. Maps produce Structured values
// with properties sorted by name.
func FromAny(x any) (*Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if v == nil {
			return Null(), nil
		}
		return v, nil
	case bool:
		return FromBool(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v)), nil
	case uint16:
		return FromInt(int64(v)), nil
	case uint32:
		return FromInt(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case decimal.Decimal:
		return FromDecimal(v), nil
	case string:
		return FromString(v), nil
	case []byte:
		return FromBytes(v), nil
	case uuid.UUID:
		return FromGUID(v), nil
	case time.Time:
		return FromDateTimeOffset(v), nil
	case time.Duration:
		return FromDuration(v), nil
	case []*Value:
		return FromSlice("", v), nil
	case []any:
		elems := make([]*Value, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return FromSlice("", elems), nil
	case map[string]*Value:
		return FromMap("", v), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(v))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			ev, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", k, err)
			}
			kvs[i] = KeyVal{Key: k, Val: ev}
		}
		return FromKeyVals("", kvs), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a value", x)
	}
}

func fromUint(u uint64) (*Value, error) {
	if u > 1<<63-1 {
		return nil, fmt.Errorf("unsigned integer %d does not fit in 64-bit signed integer", u)
	}
	return FromInt(int64(u)), nil
}
