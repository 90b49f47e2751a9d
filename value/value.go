package value

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Value is an evaluated EDM value.
//
// Like a tagged union, the slot holding the payload depends on Kind. Type
// carries the declared type name where the EDM value has one: the record
// type of a Structured value, the element type of a Collection, the
// underlying type of an Enum.
//
// Values are treated as immutable once built. The identity of a *Value is
// meaningful: materialization keys its de-duplication cache on it, so two
// equal values built separately materialize into two distinct objects while
// one value referenced twice materializes once.
type Value struct {
	Kind Kind
	Type string

	// Structured values hold property names in Fields and property values
	// at the same index in Values. Names are not required to be unique.
	// Collection values hold their elements in Values.
	Fields []string
	Values []*Value

	String   string
	Bool     bool
	Int64    int64
	Float64  float64
	Decimal  decimal.Decimal
	Bytes    []byte
	GUID     uuid.UUID
	Time     time.Time
	Duration time.Duration
}

var null = &Value{Kind: NullKind}

// Null returns the shared null value.
func Null() *Value {
	return null
}

func (v *Value) IsNull() bool {
	return v == nil || v.Kind == NullKind
}

// WithType sets the declared type tag. It is meant for use while building a
// value, before it is shared.
func (v *Value) WithType(typ string) *Value {
	if v == null {
		return v
	}
	v.Type = typ
	return v
}

func FromInt(i int64) *Value {
	return &Value{Kind: IntegerKind, Int64: i}
}

func FromFloat(f float64) *Value {
	return &Value{Kind: FloatingKind, Float64: f}
}

func FromDecimal(d decimal.Decimal) *Value {
	return &Value{Kind: DecimalKind, Decimal: d}
}

func FromString(s string) *Value {
	return &Value{Kind: StringKind, String: s}
}

func FromBool(b bool) *Value {
	return &Value{Kind: BooleanKind, Bool: b}
}

func FromBytes(b []byte) *Value {
	return &Value{Kind: BinaryKind, Bytes: b}
}

func FromGUID(g uuid.UUID) *Value {
	return &Value{Kind: GuidKind, GUID: g}
}

func FromDateTimeOffset(t time.Time) *Value {
	return &Value{Kind: DateTimeOffsetKind, Time: t}
}

// FromDate returns a Date value. Only the calendar date of the result's Time
// is meaningful; it is normalized to midnight UTC.
func FromDate(year int, month time.Month, day int) *Value {
	return &Value{Kind: DateKind, Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTimeOfDay returns a TimeOfDay value holding the offset since midnight.
func FromTimeOfDay(d time.Duration) *Value {
	return &Value{Kind: TimeOfDayKind, Duration: d}
}

func FromDuration(d time.Duration) *Value {
	return &Value{Kind: DurationKind, Duration: d}
}

// FromEnum returns an Enum value of the enum type typ. The numeric value
// need not correspond to a declared member.
func FromEnum(typ string, v int64) *Value {
	return &Value{Kind: EnumKind, Type: typ, Int64: v}
}

// FromSlice returns a Collection value with the given elements in order.
// Nil elements are stored as Null.
func FromSlice(elemType string, elems []*Value) *Value {
	res := &Value{Kind: CollectionKind, Type: elemType}
	res.Values = make([]*Value, len(elems))
	for i, e := range elems {
		if e == nil {
			e = null
		}
		res.Values[i] = e
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals returns a Structured value with properties in the order given.
// Duplicate keys are kept as-is.
func FromKeyVals(typ string, kvs []KeyVal) *Value {
	res := &Value{Kind: StructuredKind, Type: typ}
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Value, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = null
		}
		res.Fields[i] = kv.Key
		res.Values[i] = val
	}
	return res
}

// FromMap returns a Structured value with properties sorted by name.
func FromMap(typ string, m map[string]*Value) *Value {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: k, Val: m[k]}
	}
	return FromKeyVals(typ, kvs)
}

// Get returns the value of the first property named name of a Structured
// value.
func (v *Value) Get(name string) (*Value, bool) {
	if v == nil || v.Kind != StructuredKind {
		return nil, false
	}
	n := len(v.Fields)
	for i := range n {
		if v.Fields[i] == name {
			return v.Values[i], true
		}
	}
	return nil, false
}

// Len returns the number of elements of a Collection or properties of a
// Structured value, and 0 otherwise.
func (v *Value) Len() int {
	if v == nil || v.Kind.IsLeaf() {
		return 0
	}
	return len(v.Values)
}

// ToMap returns the properties of a Structured value keyed by name. When a
// name repeats, the first occurrence wins.
func ToMap(v *Value) map[string]*Value {
	if v == nil || v.Kind != StructuredKind {
		return nil
	}
	res := make(map[string]*Value, len(v.Fields))
	for i, f := range v.Fields {
		if _, ok := res[f]; ok {
			continue
		}
		res[f] = v.Values[i]
	}
	return res
}

// Visit walks v depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are visited only when the pre-order
// call returns true. Visit does not detect cycles.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}
