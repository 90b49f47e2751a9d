package eval

import (
	"errors"
	"testing"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

type termModel struct {
	m           *edm.Model
	base, typ   *edm.StructuredType
	inst        *edm.Instance
	display     *edm.Term
	description *edm.Term
	extra       *edm.Term
}

func newTermModel(t *testing.T) *termModel {
	t.Helper()
	tm := &termModel{
		base:        edm.NewStructuredType("NS", "Base"),
		typ:         edm.NewStructuredType("NS", "Person"),
		display:     edm.NewTerm("UI", "Display", "Edm.String"),
		description: edm.NewTerm("UI", "Description", "Edm.String"),
		extra:       edm.NewTerm("UI", "Extra", "Edm.String"),
	}
	tm.typ.BaseName = "NS.Base"
	tm.inst = edm.NewInstance("NS", "Me", tm.typ, value.FromKeyVals("NS.Person", []value.KeyVal{
		{Key: "Name", Val: value.FromString("Ada")},
		{Key: "UI.Extra", Val: value.FromString("qualified-prop")},
		{Key: "Extra", Val: value.FromString("local-prop")},
		{Key: "Nickname", Val: value.FromString("countess")},
	}))
	b := edm.NewBuilder().
		AddType(tm.base, tm.typ).
		AddTerm(tm.display, tm.description, tm.extra).
		AddInstance(tm.inst).
		AddOperation(edm.NewOperation("odata", "toupper", "Edm.String", edm.Parameter{Name: "s"}))
	b.Annotate(tm.base, tm.display, "", edm.NewApply("odata.toupper", edm.NewPath("Name")))
	b.Annotate(tm.base, tm.display, "Short", edm.NewPath("Nickname"))
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	tm.m = m
	return tm
}

func TestGetTermValue(t *testing.T) {
	tm := newTermModel(t)
	ops := Canonical()
	short := "Short"
	tests := []struct {
		name string
		el   edm.Element
		term *edm.Term
		qual *string
		want string
	}{
		{"inherited annotation on instance context", tm.inst, tm.display, nil, `"ADA"`},
		{"qualified", tm.inst, tm.display, &short, `"countess"`},
		{"fallback prefers qualified property", tm.inst, tm.extra, nil, `"qualified-prop"`},
		{"no annotation no property", tm.inst, tm.description, nil, ""},
		{"type without context", tm.typ, tm.description, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTermValue(tm.m, tt.el, tt.term, tt.qual, ops)
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if got != nil {
					t.Fatalf("got %s, want nothing", value.Sprint(got))
				}
				return
			}
			if s := value.Sprint(got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func TestGetTermValueWithContext(t *testing.T) {
	tm := newTermModel(t)
	ctx := value.FromKeyVals("", []value.KeyVal{{Key: "Name", Val: value.FromString("bob")}})
	got, err := GetTermValueWithContext(tm.m, tm.typ, tm.display, nil, ctx, Canonical())
	if err != nil {
		t.Fatal(err)
	}
	if s := value.Sprint(got); s != `"BOB"` {
		t.Errorf("got %s", s)
	}
	if _, err := GetTermValueWithContext(tm.m, tm.typ, tm.display, nil, nil, Canonical()); !errors.Is(err, ErrPathResolution) {
		t.Errorf("err = %v, want path resolution", err)
	}
}

func TestGetTermValueByName(t *testing.T) {
	tm := newTermModel(t)
	got, err := GetTermValueByName(tm.m, tm.inst, "UI.Display", nil, Canonical())
	if err != nil {
		t.Fatal(err)
	}
	if s := value.Sprint(got); s != `"ADA"` {
		t.Errorf("got %s", s)
	}
	got, err = GetTermValueByName(tm.m, tm.inst, "Ext.Nickname", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := value.Sprint(got); s != `"countess"` {
		t.Errorf("unbound term fallback got %s", s)
	}
	if _, err := GetTermValueByName(tm.m, tm.inst, "Ext.Unknown", nil, nil); !errors.Is(err, ErrTermNotFound) {
		t.Errorf("err = %v, want term not found", err)
	}
	if _, err := GetTermValueByName(tm.m, tm.typ, "Ext.Nickname", nil, nil); !errors.Is(err, ErrTermNotFound) {
		t.Errorf("err without context = %v, want term not found", err)
	}
}
