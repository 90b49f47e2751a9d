package value

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Values of different kinds order by kind. Compare does not terminate on
// cyclic values.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	if !a.Kind.IsLeaf() {
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
	}

	switch a.Kind {
	case NullKind:
		return 0
	case IntegerKind:
		return cmp.Compare(a.Int64, b.Int64)
	case EnumKind:
		if c := strings.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return cmp.Compare(a.Int64, b.Int64)
	case FloatingKind:
		return cmp.Compare(a.Float64, b.Float64)
	case DecimalKind:
		return a.Decimal.Cmp(b.Decimal)
	case StringKind:
		return strings.Compare(a.String, b.String)
	case BooleanKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case BinaryKind:
		return bytes.Compare(a.Bytes, b.Bytes)
	case GuidKind:
		return bytes.Compare(a.GUID[:], b.GUID[:])
	case DateTimeOffsetKind, DateKind:
		return a.Time.Compare(b.Time)
	case TimeOfDayKind, DurationKind:
		return cmp.Compare(a.Duration, b.Duration)
	case CollectionKind:
		return compareSeq(a.Values, b.Values)
	case StructuredKind:
		return compareStructured(a, b)
	}
	return 0
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *Value) bool {
	return Compare(a, b) == 0
}

func compareSeq(a, b []*Value) int {
	n := min(len(a), len(b))
	for i := range n {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareStructured(a, b *Value) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
