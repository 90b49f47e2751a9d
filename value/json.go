package value

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type valueBase struct {
	Kind   Kind     `json:"kind"`
	Type   string   `json:"type,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Values []*Value `json:"values,omitempty"`
}

func (v *Value) MarshalJSON() ([]byte, error) {
	base := valueBase{
		Kind:   v.Kind,
		Type:   v.Type,
		Fields: v.Fields,
		Values: v.Values,
	}
	switch v.Kind {
	case IntegerKind, EnumKind:
		type C struct {
			valueBase
			Int int64 `json:"int"`
		}
		return json.Marshal(C{valueBase: base, Int: v.Int64})
	case FloatingKind:
		type C struct {
			valueBase
			Float float64 `json:"float"`
		}
		return json.Marshal(C{valueBase: base, Float: v.Float64})
	case DecimalKind:
		type C struct {
			valueBase
			Decimal decimal.Decimal `json:"decimal"`
		}
		return json.Marshal(C{valueBase: base, Decimal: v.Decimal})
	case StringKind:
		type C struct {
			valueBase
			String string `json:"string"`
		}
		return json.Marshal(C{valueBase: base, String: v.String})
	case BooleanKind:
		type C struct {
			valueBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{valueBase: base, Bool: v.Bool})
	case BinaryKind:
		type C struct {
			valueBase
			Bytes []byte `json:"bytes"`
		}
		return json.Marshal(C{valueBase: base, Bytes: v.Bytes})
	case GuidKind:
		type C struct {
			valueBase
			GUID uuid.UUID `json:"guid"`
		}
		return json.Marshal(C{valueBase: base, GUID: v.GUID})
	case DateTimeOffsetKind, DateKind:
		type C struct {
			valueBase
			Time time.Time `json:"time"`
		}
		return json.Marshal(C{valueBase: base, Time: v.Time})
	case TimeOfDayKind, DurationKind:
		type C struct {
			valueBase
			Duration time.Duration `json:"duration"`
		}
		return json.Marshal(C{valueBase: base, Duration: v.Duration})
	default:
		return json.Marshal(base)
	}
}

func (v *Value) UnmarshalJSON(d []byte) error {
	type C struct {
		valueBase
		Int      int64           `json:"int"`
		Float    float64         `json:"float"`
		Decimal  decimal.Decimal `json:"decimal"`
		String   string          `json:"string"`
		Bool     bool            `json:"bool"`
		Bytes    []byte          `json:"bytes"`
		GUID     uuid.UUID       `json:"guid"`
		Time     time.Time       `json:"time"`
		Duration time.Duration   `json:"duration"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*v = Value{
		Kind:     tmp.Kind,
		Type:     tmp.Type,
		Fields:   tmp.Fields,
		Values:   tmp.Values,
		Int64:    tmp.Int,
		Float64:  tmp.Float,
		Decimal:  tmp.Decimal,
		String:   tmp.String,
		Bool:     tmp.Bool,
		Bytes:    tmp.Bytes,
		GUID:     tmp.GUID,
		Time:     tmp.Time,
		Duration: tmp.Duration,
	}
	for i, e := range v.Values {
		if e == nil {
			v.Values[i] = null
		}
	}
	return nil
}
