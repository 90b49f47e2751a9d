package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the value, consistent with Equal within one
// process. It panics if v is nil and does not terminate on cyclic values.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("value: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(v.Kind))

	var b [8]byte
	putInt := func(i int64) {
		binary.LittleEndian.PutUint64(b[:], uint64(i))
		h.Write(b[:])
	}

	switch v.Kind {
	case NullKind:
	case IntegerKind:
		putInt(v.Int64)
	case EnumKind:
		h.WriteString(v.Type)
		putInt(v.Int64)
	case FloatingKind:
		f := v.Float64
		switch {
		case f == 0:
			// -0 compares equal to +0
			f = 0
		case math.IsNaN(f):
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case DecimalKind:
		// normalized so that 1.0 and 1.00 hash alike, matching Compare
		h.WriteString(v.Decimal.String())
	case StringKind:
		h.WriteString(v.String)
	case BooleanKind:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case BinaryKind:
		h.Write(v.Bytes)
	case GuidKind:
		h.Write(v.GUID[:])
	case DateTimeOffsetKind, DateKind:
		putInt(v.Time.UnixNano())
	case TimeOfDayKind, DurationKind:
		putInt(int64(v.Duration))
	case CollectionKind:
		h.WriteString(v.Type)
		for _, e := range v.Values {
			putInt(int64(e.Hash()))
		}
	case StructuredKind:
		h.WriteString(v.Type)
		for i, f := range v.Fields {
			h.WriteString(f)
			putInt(int64(v.Values[i].Hash()))
		}
	}
	return h.Sum64()
}
