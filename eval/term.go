package eval

import (
	"fmt"

	"github.com/signadot/go-edm/annotation"
	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

// GetTermValue evaluates the annotation of term that applies to el. The
// context is el's own value when el is an edm.Valued, such as an instance.
// A nil qualifier accepts any qualifier.
//
// When no annotation applies and the context is a structured value with a
// property named after the term, that property's raw value is returned;
// the qualified name is tried before the local name. GetTermValue returns
// nil, nil when neither applies.
func GetTermValue(m *edm.Model, el edm.Element, term *edm.Term, qualifier *string, ops Operations) (*value.Value, error) {
	return GetTermValueWithContext(m, el, term, qualifier, contextOf(el), ops)
}

// GetTermValueWithContext is GetTermValue evaluating against a
// caller-supplied context, as for annotations on properties.
func GetTermValueWithContext(m *edm.Model, el edm.Element, term *edm.Term, qualifier *string, ctx *value.Value, ops Operations) (*value.Value, error) {
	a, err := annotation.Locate(m, el, term, qualifier)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return fallback(ctx, term.FullName(), term.Name), nil
	}
	return Evaluate(a.Expr, ctx, ops)
}

// GetTermValueByName is GetTermValue with the term given by qualified name.
// A name that does not resolve to a declared term may still be satisfied by
// a property of the context; otherwise it fails with ErrTermNotFound.
func GetTermValueByName(m *edm.Model, el edm.Element, name string, qualifier *string, ops Operations) (*value.Value, error) {
	if term := m.FindTerm(name); term != nil {
		return GetTermValue(m, el, term, qualifier, ops)
	}
	_, local := edm.SplitQualifiedName(name)
	if v := fallback(contextOf(el), name, local); v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrTermNotFound, name)
}

func contextOf(el edm.Element) *value.Value {
	if v, ok := el.(edm.Valued); ok {
		return v.Value()
	}
	return nil
}

func fallback(ctx *value.Value, names ...string) *value.Value {
	if ctx == nil || ctx.Kind != value.StructuredKind {
		return nil
	}
	for _, n := range names {
		if v, ok := ctx.Get(n); ok {
			return v
		}
	}
	return nil
}
