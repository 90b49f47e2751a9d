package gomap

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/eval"
	"github.com/signadot/go-edm/value"
)

type Node struct {
	Name  string
	Other *Node
	Tags  []string
	Score *int32
}

func nodeShape() *StructShape {
	s := Class[Node]("NS.Node")
	s.Fields(
		Prop("Name", String, func(n *Node) string { return n.Name }, func(n *Node, v string) { n.Name = v }),
		Prop("Other", s, func(n *Node) *Node { return n.Other }, func(n *Node, v *Node) { n.Other = v }),
		Prop("Tags", Collection[string](String, ReadOnlySequence), nil, func(n *Node, v []string) { n.Tags = v }),
		Prop("Score", Nullable[int32](Int32), nil, func(n *Node, v *int32) { n.Score = v }),
	)
	return s
}

func node(name string, kvs ...value.KeyVal) *value.Value {
	return value.FromKeyVals("NS.Node", append([]value.KeyVal{{Key: "Name", Val: value.FromString(name)}}, kvs...))
}

func TestPrimitives(t *testing.T) {
	id := uuid.MustParse("21EC2020-3AEA-1069-A2DD-08002B30309D")
	day := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		v     *value.Value
		shape Shape
		want  any
		err   error
	}{
		{"byte", value.FromInt(12), Uint8, uint8(12), nil},
		{"byte overflow", value.FromInt(257), Uint8, nil, ErrOverflow},
		{"byte negative", value.FromInt(-1), Uint8, nil, ErrOverflow},
		{"sbyte min", value.FromInt(-128), Int8, int8(-128), nil},
		{"sbyte overflow", value.FromInt(128), Int8, nil, ErrOverflow},
		{"int16 overflow", value.FromInt(math.MaxInt16 + 1), Int16, nil, ErrOverflow},
		{"uint16 max", value.FromInt(math.MaxUint16), Uint16, uint16(math.MaxUint16), nil},
		{"int32 min", value.FromInt(math.MinInt32), Int32, int32(math.MinInt32), nil},
		{"int32 overflow", value.FromInt(math.MaxInt32 + 1), Int32, nil, ErrOverflow},
		{"uint32 overflow", value.FromInt(math.MaxUint32 + 1), Uint32, nil, ErrOverflow},
		{"int64", value.FromInt(math.MinInt64), Int64, int64(math.MinInt64), nil},
		{"uint64", value.FromInt(math.MaxInt64), Uint64, uint64(math.MaxInt64), nil},
		{"uint64 negative", value.FromInt(-5), Uint64, nil, ErrOverflow},
		{"double from int", value.FromInt(3), Float64, float64(3), nil},
		{"single", value.FromFloat(1.5), Float32, float32(1.5), nil},
		{"float to int", value.FromFloat(1), Int32, nil, ErrUnsupportedConversion},
		{"decimal", value.FromDecimal(decimal.RequireFromString("1.25")), Decimal, decimal.RequireFromString("1.25"), nil},
		{"decimal from int", value.FromInt(4), Decimal, decimal.NewFromInt(4), nil},
		{"decimal from inf", value.FromFloat(math.Inf(1)), Decimal, nil, ErrUnsupportedConversion},
		{"string", value.FromString("x"), String, "x", nil},
		{"string from int", value.FromInt(1), String, nil, ErrUnsupportedConversion},
		{"bool", value.FromBool(true), Bool, true, nil},
		{"guid", value.FromGUID(id), GUID, id, nil},
		{"date", value.FromDate(2024, time.February, 29), Date, day, nil},
		{"date from datetime", value.FromDateTimeOffset(day), Date, nil, ErrUnsupportedConversion},
		{"time of day", value.FromTimeOfDay(time.Hour), TimeOfDay, time.Hour, nil},
		{"duration", value.FromDuration(time.Minute), Duration, time.Minute, nil},
		{"binary", value.FromBytes([]byte("ab")), Bytes, []byte("ab"), nil},
		{"null binary", value.Null(), Bytes, nil, nil},
		{"null int", value.Null(), Int32, nil, ErrUnsupportedConversion},
		{"nil value", nil, String, nil, ErrUnsupportedConversion},
		{"null nullable", value.Null(), Nullable[int32](Int32), nil, nil},
		{"nullable overflow", value.FromInt(1 << 40), Nullable[int32](Int32), nil, ErrOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Materialize(tt.v, tt.shape)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestOverflowMessage(t *testing.T) {
	_, err := Materialize(value.FromInt(257), Uint8)
	if err == nil || err.Error() != "materialize error: value 257 overflows Byte" {
		t.Errorf("err = %v", err)
	}
	v := node("n", value.KeyVal{Key: "Score", Val: value.FromInt(math.MaxInt64)})
	_, err = Materialize(v, nodeShape())
	var me *MaterializeError
	if !errors.As(err, &me) || me.FieldPath != "Score" {
		t.Errorf("err = %v, want error at Score", err)
	}
}

func TestNullable(t *testing.T) {
	p, err := MaterializeAs[*int32](value.FromInt(7), Nullable[int32](Int32))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || *p != 7 {
		t.Errorf("got %v", p)
	}
	if Nullable[int32](Int32).String() != "Nullable<Int32>" {
		t.Error("bad shape name")
	}
}

// Evaluated literals are not range checked; narrowing happens here.
func TestFloatSaturationVersusIntegerOverflow(t *testing.T) {
	for _, tt := range []struct {
		lit  float64
		want float64
	}{
		{1e300, math.Inf(1)},
		{-1e300, math.Inf(-1)},
		{math.MaxFloat32, math.MaxFloat32},
	} {
		v, err := eval.Evaluate(edm.Float(tt.lit), nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		got, err := MaterializeAs[float32](v, Float32)
		if err != nil {
			t.Fatal(err)
		}
		if float64(got) != tt.want {
			t.Errorf("float32(%g) = %g, want %g", tt.lit, got, tt.want)
		}
	}
	v, err := eval.Evaluate(edm.Int(1000), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Materialize(v, Int8); !errors.Is(err, ErrOverflow) {
		t.Errorf("int8 err = %v, want overflow", err)
	}
}

type Color int16

func TestEnum(t *testing.T) {
	color := Enum[Color]("NS.Color", EnumMember{"Red", 1}, EnumMember{"Green", 2}).ForType("NS.Color")
	tests := []struct {
		name string
		v    *value.Value
		want Color
		err  error
	}{
		{"member", value.FromEnum("NS.Color", 2), 2, nil},
		{"integer", value.FromInt(1), 1, nil},
		{"open world", value.FromInt(99), 99, nil},
		{"overflow", value.FromInt(1 << 20), 0, ErrOverflow},
		{"string", value.FromString("Red"), 0, ErrUnsupportedConversion},
		{"other enum type", value.FromEnum("NS.Size", 1), 0, ErrUnsupportedConversion},
		{"null", value.Null(), 0, ErrUnsupportedConversion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaterializeAs[Color](tt.v, color)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
	if m, ok := color.Member(2); !ok || m.Name != "Green" {
		t.Errorf("Member(2) = %v, %v", m, ok)
	}
	if _, err := Materialize(value.FromInt(-1), Enum[uint8]("NS.Flags")); !errors.Is(err, ErrOverflow) {
		t.Errorf("unsigned enum err = %v", err)
	}
}

func TestStruct(t *testing.T) {
	v := node("root",
		value.KeyVal{Key: "Tags", Val: value.FromSlice("Edm.String", []*value.Value{value.FromString("a"), value.FromString("b")})},
		value.KeyVal{Key: "Score", Val: value.FromInt(3)},
		value.KeyVal{Key: "Unmapped", Val: value.FromBool(true)},
		value.KeyVal{Key: "Other", Val: value.Null()},
	)
	got, err := MaterializeAs[*Node](v, nodeShape())
	if err != nil {
		t.Fatal(err)
	}
	score := int32(3)
	want := &Node{Name: "root", Tags: []string{"a", "b"}, Score: &score}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	n, err := MaterializeAs[*Node](value.Null(), nodeShape())
	if err != nil || n != nil {
		t.Errorf("null = %v, %v", n, err)
	}
}

func TestCycle(t *testing.T) {
	a := node("a", value.KeyVal{Key: "Other", Val: nil})
	b := node("b", value.KeyVal{Key: "Other", Val: a})
	a.Values[1] = b
	got, err := MaterializeAs[*Node](a, nodeShape())
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "a" || got.Other == nil || got.Other.Name != "b" {
		t.Fatalf("got %+v", got)
	}
	if got.Other == got {
		t.Error("A and B materialized to the same object")
	}
	if got.Other.Other != got {
		t.Error("B's back reference is not the materialized A")
	}
}

func TestSharedIdentity(t *testing.T) {
	type pair struct{ A, B *Node }
	shared := node("shared")
	holder := Class[pair]("NS.Pair")
	ns := nodeShape()
	holder.Fields(
		Prop("A", ns, nil, func(p *pair, n *Node) { p.A = n }),
		Prop("B", ns, nil, func(p *pair, n *Node) { p.B = n }),
	)
	v := value.FromKeyVals("NS.Pair", []value.KeyVal{{Key: "A", Val: shared}, {Key: "B", Val: shared}})
	got, err := MaterializeAs[*pair](v, holder)
	if err != nil {
		t.Fatal(err)
	}
	if got.A == nil || got.A != got.B {
		t.Error("shared value did not yield a shared object")
	}
	again, err := MaterializeAs[*pair](v, holder)
	if err != nil {
		t.Fatal(err)
	}
	if again.A == got.A {
		t.Error("identity cache leaked across calls")
	}
}

func TestSharedValueDifferentShapes(t *testing.T) {
	type label struct{ Name string }
	type pair struct {
		A *Node
		B *label
	}
	labelShape := Class[label]("NS.Label").Fields(
		Prop("Name", String, nil, func(l *label, v string) { l.Name = v }),
	)
	holder := Class[pair]("NS.Pair").Fields(
		Prop("A", nodeShape(), nil, func(p *pair, n *Node) { p.A = n }),
		Prop("B", labelShape, nil, func(p *pair, l *label) { p.B = l }),
	)
	shared := node("shared")
	v := value.FromKeyVals("NS.Pair", []value.KeyVal{{Key: "A", Val: shared}, {Key: "B", Val: shared}})
	got, err := MaterializeAs[*pair](v, holder)
	if err != nil {
		t.Fatal(err)
	}
	if got.A == nil || got.A.Name != "shared" {
		t.Errorf("A = %+v", got.A)
	}
	if got.B == nil || got.B.Name != "shared" {
		t.Errorf("B = %+v", got.B)
	}
}

func TestDuplicateProperty(t *testing.T) {
	v := value.FromKeyVals("NS.Node", []value.KeyVal{
		{Key: "P1", Val: value.FromInt(1)},
		{Key: "P1", Val: value.FromInt(2)},
	})
	for _, s := range []*StructShape{nodeShape(), Class[struct{}]("NS.Empty")} {
		_, err := Materialize(v, s)
		if !errors.Is(err, ErrDuplicateProperty) {
			t.Errorf("%s: err = %v, want duplicate property", s, err)
		}
	}
}

func TestCollectionNegotiation(t *testing.T) {
	v := value.FromSlice("Edm.Int32", []*value.Value{value.FromInt(1), value.FromInt(2), value.FromInt(3)})
	want := []int32{1, 2, 3}

	seq, err := MaterializeAs[[]int32](v, Collection[int32](Int32, ReadOnlySequence))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, seq); diff != "" {
		t.Errorf("sequence (-want +got):\n%s", diff)
	}
	list, err := MaterializeAs[*List[int32]](v, Collection[int32](Int32, MutableList))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, list.Items()); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}
	bag, err := MaterializeAs[*Bag[int32]](v, Collection[int32](Int32, MutableUnorderedCollection))
	if err != nil {
		t.Fatal(err)
	}
	if bag.Len() != 3 {
		t.Errorf("bag has %d items", bag.Len())
	}

	for _, kind := range []ContainerKind{FixedArray, UntypedEnumerable, CustomCollection} {
		s := Collection[int32](Int32, kind)
		_, err := Materialize(v, s)
		if !errors.Is(err, ErrUnsupportedCollectionTarget) {
			t.Fatalf("%s: err = %v", s, err)
		}
		for _, name := range []string{"ReadOnlySequence", "MutableList", "MutableUnorderedCollection"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("%s: message %q does not name %s", s, err, name)
			}
		}
	}
}

func TestNestedCollections(t *testing.T) {
	inner := func(xs ...int64) *value.Value {
		vs := make([]*value.Value, len(xs))
		for i, x := range xs {
			vs[i] = value.FromInt(x)
		}
		return value.FromSlice("Edm.Int64", vs)
	}
	v := value.FromSlice("", []*value.Value{inner(1, 2), value.Null(), inner()})
	s := Collection[*List[int64]](Collection[int64](Int64, MutableList), ReadOnlySequence)
	got, err := MaterializeAs[[]*List[int64]](v, s)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1] != nil || got[0].Len() != 2 || got[2].Len() != 0 {
		t.Errorf("got %v", got)
	}
	bad := value.FromSlice("", []*value.Value{inner(1), value.FromInt(2)})
	if _, err := Materialize(bad, s); !errors.Is(err, ErrKindShapeMismatch) {
		t.Errorf("err = %v, want kind shape mismatch", err)
	}
}

func TestNullElements(t *testing.T) {
	v := value.FromSlice("", []*value.Value{node("a"), nil, node("b")})
	got, err := MaterializeAs[[]*Node](v, Collection[*Node](nodeShape(), ReadOnlySequence))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[1] != nil || got[2].Name != "b" {
		t.Errorf("got %v", got)
	}
	ints := value.FromSlice("", []*value.Value{value.FromInt(1), nil})
	if _, err := Materialize(ints, Collection[int32](Int32, ReadOnlySequence)); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("null int element err = %v", err)
	}
	nullable, err := MaterializeAs[[]*int32](ints, Collection[*int32](Nullable[int32](Int32), ReadOnlySequence))
	if err != nil {
		t.Fatal(err)
	}
	if len(nullable) != 2 || *nullable[0] != 1 || nullable[1] != nil {
		t.Errorf("got %v", nullable)
	}
}

func TestKindShapeMismatch(t *testing.T) {
	coll := value.FromSlice("", []*value.Value{value.FromInt(1)})
	tests := []struct {
		v     *value.Value
		shape Shape
		msg   string
	}{
		{coll, Int32, "cannot materialize Collection value as Int32"},
		{value.FromInt(1), Collection[int32](Int32, ReadOnlySequence), "cannot materialize Integer value as ReadOnlySequence<Int32>"},
		{node("x"), Int32, "cannot materialize Structured value as Int32"},
		{value.FromInt(1), nodeShape(), "cannot materialize Integer value as NS.Node"},
		{coll, Enum[Color]("NS.Color"), "cannot materialize Collection value as NS.Color"},
	}
	for _, tt := range tests {
		_, err := Materialize(tt.v, tt.shape)
		if !errors.Is(err, ErrKindShapeMismatch) {
			t.Errorf("%s: err = %v", tt.shape, err)
			continue
		}
		if !strings.Contains(err.Error(), tt.msg) {
			t.Errorf("message %q does not contain %q", err, tt.msg)
		}
	}
}

type Shaper interface{ Area() float64 }

type Point struct{ X, Y int32 }

func TestUnsupportedTargetShape(t *testing.T) {
	v := value.FromKeyVals("NS.Point", []value.KeyVal{{Key: "X", Val: value.FromInt(1)}, {Key: "Y", Val: value.FromInt(2)}})
	point := ValueType[Point]("NS.Point")
	for _, s := range []*StructShape{Abstract[Node]("NS.AbstractNode"), Interface[Shaper]("NS.Shaper"), point} {
		if s.Instantiable() {
			t.Errorf("%s is instantiable", s)
		}
		if _, err := Materialize(v, s); !errors.Is(err, ErrUnsupportedTargetShape) {
			t.Errorf("%s: err = %v", s, err)
		}
	}
}

func TestNotInstantiable(t *testing.T) {
	s := ClassFunc[Node]("NS.Node", nil)
	_, err := Materialize(node("x"), s)
	if !errors.Is(err, ErrNotInstantiable) {
		t.Fatalf("err = %v", err)
	}
	hook := HookFunc(func(*value.Value, *StructShape) (Instance, error) {
		return Instance{Object: &Node{Name: "from hook"}, Populated: true}, nil
	})
	got, err := MaterializeAs[*Node](node("x"), s, WithHook(hook))
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "from hook" {
		t.Errorf("populated instance was modified: %+v", got)
	}
}

type Animal interface{ AnimalName() string }

type Base struct{ Name string }

func (b *Base) AnimalName() string { return b.Name }

type Derived struct {
	Base
	Extra string
}

type Other struct{}

func animalShapes() (base, derived *StructShape) {
	base = Class[Base]("NS.Base").Fields(
		Prop("Name", String, nil, func(b *Base, v string) { b.Name = v }),
	)
	derived = Class[Derived]("NS.Derived").Derives(base).Fields(
		Prop("Name", String, nil, func(d *Derived, v string) { d.Name = v }),
		Prop("Extra", String, nil, func(d *Derived, v string) { d.Extra = v }),
	)
	return base, derived
}

func animals() *value.Value {
	return value.FromSlice("NS.Base", []*value.Value{
		value.FromKeyVals("NS.Base", []value.KeyVal{{Key: "Name", Val: value.FromString("a")}}),
		value.FromKeyVals("NS.Derived", []value.KeyVal{
			{Key: "Name", Val: value.FromString("b")},
			{Key: "Extra", Val: value.FromString("x")},
		}),
		value.FromKeyVals("", []value.KeyVal{{Key: "Name", Val: value.FromString("c")}}),
	})
}

func TestPolymorphicHook(t *testing.T) {
	base, derived := animalShapes()
	calls := 0
	hook := HookFunc(func(v *value.Value, requested *StructShape) (Instance, error) {
		calls++
		if v.Type == "NS.Derived" {
			return Instance{Object: &Derived{}, Shape: derived}, nil
		}
		return Decline(), nil
	})
	for name, h := range map[string]Hook{"func": hook, "type": TypeHook{"NS.Derived": derived}} {
		t.Run(name, func(t *testing.T) {
			got, err := MaterializeAs[*List[Animal]](animals(), Collection[Animal](base, MutableList), WithHook(h))
			if err != nil {
				t.Fatal(err)
			}
			if got.Len() != 3 {
				t.Fatalf("len = %d", got.Len())
			}
			if _, ok := got.At(0).(*Base); !ok {
				t.Errorf("element 0 is %T", got.At(0))
			}
			d, ok := got.At(1).(*Derived)
			if !ok {
				t.Fatalf("element 1 is %T", got.At(1))
			}
			if d.Name != "b" || d.Extra != "x" {
				t.Errorf("derived = %+v", d)
			}
			if _, ok := got.At(2).(*Base); !ok || got.At(2).AnimalName() != "c" {
				t.Errorf("element 2 is %T", got.At(2))
			}
		})
	}
	if calls != 3 {
		t.Errorf("hook called %d times, want once per element", calls)
	}
}

func TestHookTypeMismatch(t *testing.T) {
	base, derived := animalShapes()
	unrelated := Class[Other]("NS.Other")
	tests := []struct {
		name string
		inst Instance
	}{
		{"unrelated object", Instance{Object: &Other{}}},
		{"unrelated shape", Instance{Object: &Other{}, Shape: unrelated}},
		{"object not owned by shape", Instance{Object: &Base{}, Shape: derived}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := HookFunc(func(*value.Value, *StructShape) (Instance, error) { return tt.inst, nil })
			_, err := Materialize(animals().Values[0], base, WithHook(hook))
			if !errors.Is(err, ErrHookTypeMismatch) {
				t.Errorf("err = %v", err)
			}
		})
	}
	failing := HookFunc(func(*value.Value, *StructShape) (Instance, error) { return Instance{}, errors.New("no") })
	if _, err := Materialize(animals().Values[0], base, WithHook(failing)); err == nil || !strings.Contains(err.Error(), "hook: no") {
		t.Errorf("err = %v", err)
	}
}

type Holder struct {
	names *List[string]
	bag   *Bag[int64]
	fixed *List[string]
}

func TestGetterOnlyCollections(t *testing.T) {
	s := ClassFunc("NS.Holder", func() *Holder {
		return &Holder{names: NewList("pre"), bag: NewBag[int64]()}
	}).Fields(
		Prop("Names", Collection[string](String, MutableList), func(h *Holder) *List[string] { return h.names }, nil),
		Prop("Bag", Collection[int64](Int64, MutableUnorderedCollection), func(h *Holder) *Bag[int64] { return h.bag }, nil),
		Prop("Fixed", Collection[string](String, MutableList), func(h *Holder) *List[string] { return h.fixed }, nil),
	)
	strs := value.FromSlice("", []*value.Value{value.FromString("a"), value.FromString("b")})
	v := value.FromKeyVals("NS.Holder", []value.KeyVal{
		{Key: "Names", Val: strs},
		{Key: "Bag", Val: value.FromSlice("", []*value.Value{value.FromInt(1)})},
		{Key: "Fixed", Val: strs},
	})
	got, err := MaterializeAs[*Holder](v, s)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"pre", "a", "b"}, got.names.Items()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if got.bag.Len() != 1 {
		t.Errorf("bag len = %d", got.bag.Len())
	}
	if got.fixed != nil {
		t.Error("a nil getter-only container was replaced")
	}
}

func TestNotTransactional(t *testing.T) {
	var made []*Node
	hook := HookFunc(func(*value.Value, *StructShape) (Instance, error) {
		n := &Node{}
		made = append(made, n)
		return Instance{Object: n}, nil
	})
	v := node("parent",
		value.KeyVal{Key: "Other", Val: node("child", value.KeyVal{Key: "Score", Val: value.FromInt(1 << 40)})},
	)
	_, err := Materialize(v, nodeShape(), WithHook(hook))
	var me *MaterializeError
	if !errors.As(err, &me) || !errors.Is(err, ErrOverflow) || me.FieldPath != "Other.Score" {
		t.Fatalf("err = %v", err)
	}
	if len(made) != 2 || made[0].Name != "parent" || made[1].Name != "child" {
		t.Errorf("partial objects = %+v", made)
	}
}

func TestMaterializeAsTypeMismatch(t *testing.T) {
	if _, err := MaterializeAs[string](value.FromInt(1), Int32); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v", err)
	}
	wrong := Class[Node]("NS.Node").Fields(
		Prop("Name", Int32, nil, func(n *Node, v string) { n.Name = v }),
	)
	if _, err := Materialize(node("x"), wrong); err == nil {
		t.Error("expected error for mismatched field shape")
	}
}
