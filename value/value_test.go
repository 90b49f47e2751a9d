package value

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func person(name string, age int64) *Value {
	return FromKeyVals("NS.Person", []KeyVal{
		{Key: "Name", Val: FromString(name)},
		{Key: "Age", Val: FromInt(age)},
	})
}

func TestGet(t *testing.T) {
	v := FromKeyVals("", []KeyVal{
		{Key: "P1", Val: FromInt(1)},
		{Key: "P1", Val: FromInt(2)},
		{Key: "P2", Val: nil},
	})
	got, ok := v.Get("P1")
	if !ok || got.Int64 != 1 {
		t.Errorf("Get(P1) = %v, %v, want first occurrence", got, ok)
	}
	got, ok = v.Get("P2")
	if !ok || got != Null() {
		t.Errorf("Get(P2) = %v, %v, want shared null", got, ok)
	}
	if _, ok := v.Get("missing"); ok {
		t.Error("Get(missing) found a property")
	}
	if _, ok := FromInt(1).Get("P1"); ok {
		t.Error("Get on a non-structured value found a property")
	}
	m := ToMap(v)
	if len(m) != 2 || m["P1"].Int64 != 1 {
		t.Errorf("ToMap = %v", m)
	}
}

func TestNullSingleton(t *testing.T) {
	if Null() != Null() {
		t.Fatal("Null() is not a singleton")
	}
	if Null().WithType("X").Type != "" {
		t.Error("WithType modified the shared null")
	}
	var nilValue *Value
	if !nilValue.IsNull() {
		t.Error("nil value is not null")
	}
	c := FromSlice("Edm.Int32", []*Value{FromInt(1), nil})
	if c.Values[1] != Null() {
		t.Error("nil collection element not stored as null")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want int
	}{
		{"equal ints", FromInt(3), FromInt(3), 0},
		{"ints", FromInt(2), FromInt(3), -1},
		{"kinds order", FromString("a"), FromInt(1), 1},
		{"decimals scale", FromDecimal(decimal.RequireFromString("1.0")), FromDecimal(decimal.RequireFromString("1.00")), 0},
		{"enums by type", FromEnum("NS.A", 1), FromEnum("NS.B", 1), -1},
		{"structured", person("Ada", 36), person("Ada", 36), 0},
		{"structured field value", person("Ada", 36), person("Ada", 37), -1},
		{"structured type", person("Ada", 1).WithType("NS.Employee"), person("Ada", 1), -1},
		{"collections length", FromSlice("", []*Value{FromInt(1)}), FromSlice("", []*Value{FromInt(1), FromInt(2)}), -1},
		{"nulls", Null(), &Value{}, 0},
		{"signed zeros", FromFloat(0), FromFloat(math.Copysign(0, -1)), 0},
		{"nans", FromFloat(math.NaN()), FromFloat(math.Float64frombits(0x7ff8000000000001)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
			}
			if tt.want == 0 && tt.a.Hash() != tt.b.Hash() {
				t.Error("equal values hash differently")
			}
		})
	}
}

func TestAnyRoundTrip(t *testing.T) {
	id := uuid.MustParse("21EC2020-3AEA-1069-A2DD-08002B30309D")
	in := map[string]any{
		"int":   7,
		"float": 1.5,
		"str":   "x",
		"list":  []any{true, nil},
		"guid":  id,
		"nest":  map[string]any{"a": int64(1)},
	}
	v, err := FromAny(in)
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != StructuredKind {
		t.Fatalf("kind = %s", v.Kind)
	}
	if diff := cmp.Diff([]string{"float", "guid", "int", "list", "nest", "str"}, v.Fields); diff != "" {
		t.Errorf("fields not sorted (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"int":   7,
		"float": 1.5,
		"str":   "x",
		"list":  []any{true, nil},
		"guid":  id,
		"nest":  map[string]any{"a": 1},
	}
	if diff := cmp.Diff(want, ToAny(v)); diff != "" {
		t.Errorf("ToAny (-want +got):\n%s", diff)
	}
	if _, err := FromAny(uint64(math.MaxUint64)); err == nil {
		t.Error("expected error for uint64 overflow")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestFormat(t *testing.T) {
	v := FromKeyVals("NS.Person", []KeyVal{
		{Key: "Name", Val: FromString("Ada")},
		{Key: "Scores", Val: FromSlice("Edm.Double", []*Value{FromFloat(2), FromFloat(2.5), nil})},
		{Key: "Color", Val: FromEnum("NS.Color", 2)},
		{Key: "Born", Val: FromDate(1815, time.December, 10)},
		{Key: "At", Val: FromTimeOfDay(13*time.Hour + 5*time.Minute + 1500*time.Millisecond)},
		{Key: "Cost", Val: FromDecimal(decimal.RequireFromString("12.50"))},
	})
	want := `NS.Person{Name: "Ada", Scores: [2.0, 2.5, null], Color: NS.Color'2', Born: 1815-12-10, At: 13:05:01.500, Cost: 12.5m}`
	if got := Sprint(v); got != want {
		t.Errorf("Sprint() =\n%s\nwant\n%s", got, want)
	}

	pretty := FromKeyVals("", []KeyVal{
		{Key: "A", Val: FromInt(1)},
		{Key: "B", Val: FromSlice("", []*Value{FromBool(true)})},
	})
	wantPretty := "{\n  A: 1,\n  B: [\n    true\n  ]\n}"
	if got := Sprint(pretty, FormatPretty(true)); got != wantPretty {
		t.Errorf("pretty Sprint() =\n%s\nwant\n%s", got, wantPretty)
	}
}

func TestFormatCycle(t *testing.T) {
	a := FromKeyVals("A", []KeyVal{{Key: "Self", Val: nil}})
	a.Values[0] = a
	if got, want := Sprint(a), "A{Self: <cycle>}"; got != want {
		t.Errorf("Sprint() = %q, want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	v := FromKeyVals("NS.T", []KeyVal{
		{Key: "I", Val: FromInt(1)},
		{Key: "S", Val: FromString("s")},
		{Key: "G", Val: FromGUID(uuid.MustParse("21EC2020-3AEA-1069-A2DD-08002B30309D"))},
		{Key: "D", Val: FromDuration(time.Second)},
		{Key: "N", Val: nil},
		{Key: "C", Val: FromSlice("Edm.Boolean", []*Value{FromBool(true), FromBool(false)})},
	})
	d, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	got := &Value{}
	if err := json.Unmarshal(d, got); err != nil {
		t.Fatal(err)
	}
	if !Equal(v, got) {
		t.Errorf("round trip mismatch:\n%s\n%s", Sprint(v), Sprint(got))
	}
}
