package annotation

import (
	"fmt"

	"github.com/signadot/go-edm/debug"
	"github.com/signadot/go-edm/edm"
)

var ErrTermNotFound = edm.ErrTermNotFound

// Locate returns the annotation of term that applies to target. A nil
// qualifier accepts an annotation with any qualifier; otherwise the
// qualifier must match exactly. Target is searched first; an instance is
// followed by its type, and a structured type by its base types up to the
// root. The first element of that chain carrying a match wins, and within
// one element the first match in declaration order wins.
//
// Locate returns nil, nil when nothing applies.
func Locate(m *edm.Model, target edm.Element, term *edm.Term, qualifier *string) (*edm.Annotation, error) {
	if term == nil {
		return nil, fmt.Errorf("%w: nil term", ErrTermNotFound)
	}
	for _, el := range chain(target) {
		for _, a := range m.Annotations(el) {
			if a.Term != term {
				continue
			}
			if qualifier != nil && a.Qualifier != *qualifier {
				continue
			}
			if debug.Locate() {
				debug.Logf("locate %s#%s on %s: found on %s\n", term.FullName(), qualString(qualifier), target.FullName(), el.FullName())
			}
			return a, nil
		}
	}
	if debug.Locate() {
		debug.Logf("locate %s#%s on %s: none\n", term.FullName(), qualString(qualifier), target.FullName())
	}
	return nil, nil
}

// LocateByName is Locate with the term given by qualified name, resolved
// against m at call time.
func LocateByName(m *edm.Model, target edm.Element, name string, qualifier *string) (*edm.Annotation, error) {
	term := m.FindTerm(name)
	if term == nil {
		return nil, fmt.Errorf("%w: %s", ErrTermNotFound, name)
	}
	return Locate(m, target, term, qualifier)
}

func Find(m *edm.Model, target edm.Element, term *edm.Term) (edm.Expr, error) {
	return expr(Locate(m, target, term, nil))
}

func FindQualified(m *edm.Model, target edm.Element, term *edm.Term, qualifier string) (edm.Expr, error) {
	return expr(Locate(m, target, term, &qualifier))
}

func FindByName(m *edm.Model, target edm.Element, name string) (edm.Expr, error) {
	return expr(LocateByName(m, target, name, nil))
}

func FindByNameQualified(m *edm.Model, target edm.Element, name, qualifier string) (edm.Expr, error) {
	return expr(LocateByName(m, target, name, &qualifier))
}

// All returns every annotation of term on the first element of target's
// chain that has any, leaving qualifier selection to the caller.
func All(m *edm.Model, target edm.Element, term *edm.Term) ([]*edm.Annotation, error) {
	if term == nil {
		return nil, fmt.Errorf("%w: nil term", ErrTermNotFound)
	}
	for _, el := range chain(target) {
		var res []*edm.Annotation
		for _, a := range m.Annotations(el) {
			if a.Term == term {
				res = append(res, a)
			}
		}
		if len(res) != 0 {
			return res, nil
		}
	}
	return nil, nil
}

func chain(target edm.Element) []edm.Element {
	res := []edm.Element{target}
	var t *edm.StructuredType
	switch x := target.(type) {
	case *edm.Instance:
		t = x.Type
	case *edm.StructuredType:
		t = x.BaseType()
	}
	for ; t != nil; t = t.BaseType() {
		res = append(res, t)
	}
	return res
}

func expr(a *edm.Annotation, err error) (edm.Expr, error) {
	if a == nil || err != nil {
		return nil, err
	}
	return a.Expr, nil
}

func qualString(q *string) string {
	if q == nil {
		return "*"
	}
	return *q
}
