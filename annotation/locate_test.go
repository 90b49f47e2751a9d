package annotation

import (
	"errors"
	"testing"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

type fixture struct {
	m           *edm.Model
	base, mid   *edm.StructuredType
	leaf, other *edm.StructuredType
	inst        *edm.Instance
	label, size *edm.Term
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		base:  edm.NewStructuredType("NS", "Base"),
		mid:   edm.NewStructuredType("NS", "Mid"),
		leaf:  edm.NewStructuredType("NS", "Leaf"),
		other: edm.NewStructuredType("NS", "Other"),
		label: edm.NewTerm("Voc", "Label", "Edm.String"),
		size:  edm.NewTerm("Voc", "Size", "Edm.Int32"),
	}
	f.mid.BaseName = "NS.Base"
	f.leaf.BaseName = "NS.Mid"
	f.inst = edm.NewInstance("NS", "TheLeaf", f.leaf, value.FromKeyVals("NS.Leaf", nil))
	b := edm.NewBuilder().
		Alias("V", "Voc").
		AddType(f.base, f.mid, f.leaf, f.other).
		AddTerm(f.label, f.size).
		AddInstance(f.inst)
	b.Annotate(f.base, f.label, "", edm.String("base"))
	b.Annotate(f.base, f.size, "", edm.Int(1))
	b.Annotate(f.mid, f.label, "Short", edm.String("mid-short"))
	b.Annotate(f.mid, f.label, "Long", edm.String("mid-long"))
	b.Annotate(f.inst, f.size, "", edm.Int(3))
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	f.m = m
	return f
}

func constString(t *testing.T, e edm.Expr) string {
	t.Helper()
	c, ok := e.(*edm.Constant)
	if !ok {
		t.Fatalf("expr = %v, want constant", e)
	}
	return value.Sprint(c.Value)
}

func TestFind(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name   string
		target edm.Element
		term   *edm.Term
		qual   *string
		want   string
	}{
		{"direct", f.base, f.label, nil, `"base"`},
		{"any qualifier first declared", f.mid, f.label, nil, `"mid-short"`},
		{"qualified", f.mid, f.label, ptr("Long"), `"mid-long"`},
		{"inherited from grandparent", f.leaf, f.size, nil, "1"},
		{"inherited qualified", f.leaf, f.label, ptr("Long"), `"mid-long"`},
		{"qualifier falls through to base", f.leaf, f.label, ptr(""), `"base"`},
		{"instance own annotation first", f.inst, f.size, nil, "3"},
		{"instance falls back to type", f.inst, f.label, ptr("Short"), `"mid-short"`},
		{"unrelated type", f.other, f.label, nil, ""},
		{"unknown qualifier", f.leaf, f.label, ptr("Nope"), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				e   edm.Expr
				err error
			)
			if tt.qual == nil {
				e, err = Find(f.m, tt.target, tt.term)
			} else {
				e, err = FindQualified(f.m, tt.target, tt.term, *tt.qual)
			}
			if err != nil {
				t.Fatal(err)
			}
			if tt.want == "" {
				if e != nil {
					t.Fatalf("found %v, want nothing", e)
				}
				return
			}
			if got := constString(t, e); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFindByName(t *testing.T) {
	f := newFixture(t)
	e, err := FindByName(f.m, f.leaf, "V.Size")
	if err != nil {
		t.Fatal(err)
	}
	if got := constString(t, e); got != "1" {
		t.Errorf("got %s", got)
	}
	e, err = FindByNameQualified(f.m, f.leaf, "Voc.Label", "Short")
	if err != nil {
		t.Fatal(err)
	}
	if got := constString(t, e); got != `"mid-short"` {
		t.Errorf("got %s", got)
	}
	_, err = FindByName(f.m, f.leaf, "Voc.Missing")
	if !errors.Is(err, ErrTermNotFound) {
		t.Errorf("err = %v, want ErrTermNotFound", err)
	}
	if err == nil || err.Error() != "term not found: Voc.Missing" {
		t.Errorf("message = %v", err)
	}
	if _, err := Find(f.m, f.leaf, nil); !errors.Is(err, ErrTermNotFound) {
		t.Errorf("nil term err = %v", err)
	}
}

func TestAll(t *testing.T) {
	f := newFixture(t)
	as, err := All(f.m, f.leaf, f.label)
	if err != nil {
		t.Fatal(err)
	}
	if len(as) != 2 || as[0].Qualifier != "Short" || as[1].Qualifier != "Long" {
		t.Errorf("All = %v", as)
	}
	as, err = All(f.m, f.other, f.label)
	if err != nil || as != nil {
		t.Errorf("All on unannotated = %v, %v", as, err)
	}
}

func ptr(s string) *string { return &s }
