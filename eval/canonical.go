package eval

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

const CanonicalNamespace = "odata"

func canonicalKey(name string, arity int) edm.OperationKey {
	return edm.OperationKey{Namespace: CanonicalNamespace, Name: name, Arity: arity}
}

var canonicalScripts = []struct {
	name   string
	arity  int
	script string
}{
	{"toupper", 1, `upper(arg0)`},
	{"tolower", 1, `lower(arg0)`},
	{"trim", 1, `trim(arg0)`},
	{"contains", 2, `arg0 contains arg1`},
	{"startswith", 2, `arg0 startsWith arg1`},
	{"endswith", 2, `arg0 endsWith arg1`},
}

// Canonical returns a new table holding the canonical string functions in
// the odata namespace. Every one of them returns null when any argument is
// null.
func Canonical() *Table {
	t := NewTable()
	t.MustRegister(canonicalKey("concat", 2), nullPropagating(concat))
	t.MustRegister(canonicalKey("length", 1), nullPropagating(length))
	t.MustRegister(canonicalKey("substring", 2), nullPropagating(substring))
	t.MustRegister(canonicalKey("substring", 3), nullPropagating(substring))
	for _, s := range canonicalScripts {
		f, err := script(s.script, s.arity, nil)
		if err != nil {
			panic(err)
		}
		t.MustRegister(canonicalKey(s.name, s.arity), nullPropagating(stringArgs(f)))
	}
	return t
}

// CanonicalOperations declares the operations of Canonical, for adding to
// a model so that applies of them resolve.
func CanonicalOperations() []*edm.Operation {
	str := func(name string) edm.Parameter { return edm.Parameter{Name: name, Type: "Edm.String"} }
	i32 := func(name string) edm.Parameter { return edm.Parameter{Name: name, Type: "Edm.Int32"} }
	ops := []*edm.Operation{
		edm.NewOperation(CanonicalNamespace, "concat", "Edm.String", str("left"), str("right")),
		edm.NewOperation(CanonicalNamespace, "length", "Edm.Int32", str("s")),
		edm.NewOperation(CanonicalNamespace, "substring", "Edm.String", str("s"), i32("start")),
		edm.NewOperation(CanonicalNamespace, "substring", "Edm.String", str("s"), i32("start"), i32("length")),
	}
	for _, s := range canonicalScripts {
		ret := "Edm.String"
		params := []edm.Parameter{str("s")}
		if s.arity == 2 {
			ret = "Edm.Boolean"
			params = append(params, str("sub"))
		}
		ops = append(ops, edm.NewOperation(CanonicalNamespace, s.name, ret, params...))
	}
	return ops
}

func nullPropagating(f Func) Func {
	return func(args []*value.Value) (*value.Value, error) {
		for _, a := range args {
			if a.IsNull() {
				return value.Null(), nil
			}
		}
		return f(args)
	}
}

func stringArgs(f Func) Func {
	return func(args []*value.Value) (*value.Value, error) {
		for i, a := range args {
			if a.Kind != value.StringKind {
				return nil, fmt.Errorf("%w: argument %d is %s, not String", ErrTypeMismatch, i, a.Kind)
			}
		}
		return f(args)
	}
}

func concat(args []*value.Value) (*value.Value, error) {
	if args[0].Kind == value.CollectionKind && args[1].Kind == value.CollectionKind {
		elems := append(append([]*value.Value{}, args[0].Values...), args[1].Values...)
		return value.FromSlice(args[0].Type, elems), nil
	}
	var b strings.Builder
	for i, a := range args {
		if a.Kind != value.StringKind {
			return nil, fmt.Errorf("%w: argument %d is %s, not String", ErrTypeMismatch, i, a.Kind)
		}
		b.WriteString(a.String)
	}
	return value.FromString(b.String()), nil
}

func length(args []*value.Value) (*value.Value, error) {
	switch a := args[0]; a.Kind {
	case value.StringKind:
		return value.FromInt(int64(utf8.RuneCountInString(a.String))), nil
	case value.CollectionKind:
		return value.FromInt(int64(len(a.Values))), nil
	default:
		return nil, fmt.Errorf("%w: length of %s", ErrTypeMismatch, a.Kind)
	}
}

// substring counts in characters. start and length are clamped to the
// string.
func substring(args []*value.Value) (*value.Value, error) {
	s := args[0]
	if s.Kind != value.StringKind {
		return nil, fmt.Errorf("%w: substring of %s", ErrTypeMismatch, s.Kind)
	}
	for _, a := range args[1:] {
		if a.Kind != value.IntegerKind {
			return nil, fmt.Errorf("%w: substring index is %s, not Integer", ErrTypeMismatch, a.Kind)
		}
	}
	rs := []rune(s.String)
	n := int64(len(rs))
	start := min(max(args[1].Int64, 0), n)
	end := n
	if len(args) == 3 {
		if l := max(args[2].Int64, 0); l < n-start {
			end = start + l
		}
	}
	return value.FromString(string(rs[start:end])), nil
}
