package value

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	IntegerKind
	FloatingKind
	DecimalKind
	StringKind
	BooleanKind
	BinaryKind
	GuidKind
	DateTimeOffsetKind
	DateKind
	TimeOfDayKind
	DurationKind
	EnumKind
	CollectionKind
	StructuredKind
)

var kindNames = map[Kind]string{
	NullKind:           "Null",
	IntegerKind:        "Integer",
	FloatingKind:       "Floating",
	DecimalKind:        "Decimal",
	StringKind:         "String",
	BooleanKind:        "Boolean",
	BinaryKind:         "Binary",
	GuidKind:           "Guid",
	DateTimeOffsetKind: "DateTimeOffset",
	DateKind:           "Date",
	TimeOfDayKind:      "TimeOfDay",
	DurationKind:       "Duration",
	EnumKind:           "Enum",
	CollectionKind:     "Collection",
	StructuredKind:     "Structured",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	for kk, s := range kindNames {
		if s == string(d) {
			*k = kk
			return nil
		}
	}
	return fmt.Errorf("unrecognized kind %q", d)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		IntegerKind,
		FloatingKind,
		DecimalKind,
		StringKind,
		BooleanKind,
		BinaryKind,
		GuidKind,
		DateTimeOffsetKind,
		DateKind,
		TimeOfDayKind,
		DurationKind,
		EnumKind,
		CollectionKind,
		StructuredKind,
	}
}

// IsLeaf reports whether values of kind k carry no child values.
func (k Kind) IsLeaf() bool {
	switch k {
	case CollectionKind, StructuredKind:
		return false
	default:
		return true
	}
}

// IsNumeric reports whether k is one of the numeric primitive kinds.
func (k Kind) IsNumeric() bool {
	switch k {
	case IntegerKind, FloatingKind, DecimalKind:
		return true
	default:
		return false
	}
}
