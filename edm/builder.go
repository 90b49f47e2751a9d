package edm

import (
	"errors"
	"fmt"
)

// Builder assembles a Model. Declarations may arrive in any order; Build
// links base types and binds every Apply in every annotation to the declared
// overload with a matching number of parameters.
type Builder struct {
	m    *Model
	errs []error
}

func NewBuilder() *Builder {
	return &Builder{m: newModel()}
}

// Alias makes alias usable in place of namespace in qualified names.
func (b *Builder) Alias(alias, namespace string) *Builder {
	if prev, ok := b.m.aliases[alias]; ok && prev != namespace {
		b.errs = append(b.errs, fmt.Errorf("%w: alias %q for %q and %q", ErrDuplicateDeclaration, alias, prev, namespace))
		return b
	}
	b.m.aliases[alias] = namespace
	return b
}

func (b *Builder) AddType(types ...*StructuredType) *Builder {
	for _, t := range types {
		if _, ok := b.m.types[t.FullName()]; ok {
			b.errs = append(b.errs, fmt.Errorf("%w: type %s", ErrDuplicateDeclaration, t.FullName()))
			continue
		}
		for _, p := range t.Properties {
			p.DeclaringType = t
		}
		b.m.types[t.FullName()] = t
	}
	return b
}

func (b *Builder) AddEnum(enums ...*EnumType) *Builder {
	for _, e := range enums {
		if _, ok := b.m.enums[e.FullName()]; ok {
			b.errs = append(b.errs, fmt.Errorf("%w: enum %s", ErrDuplicateDeclaration, e.FullName()))
			continue
		}
		b.m.enums[e.FullName()] = e
	}
	return b
}

func (b *Builder) AddTerm(terms ...*Term) *Builder {
	for _, t := range terms {
		if _, ok := b.m.terms[t.FullName()]; ok {
			b.errs = append(b.errs, fmt.Errorf("%w: term %s", ErrDuplicateDeclaration, t.FullName()))
			continue
		}
		b.m.terms[t.FullName()] = t
	}
	return b
}

// AddOperation declares operations. Overloads of one name must differ in
// arity.
func (b *Builder) AddOperation(ops ...*Operation) *Builder {
	for _, op := range ops {
		qn := op.FullName()
		dup := false
		for _, prev := range b.m.operations[qn] {
			if len(prev.Parameters) == len(op.Parameters) {
				dup = true
				break
			}
		}
		if dup {
			b.errs = append(b.errs, fmt.Errorf("%w: operation %s", ErrDuplicateDeclaration, op.Key()))
			continue
		}
		b.m.operations[qn] = append(b.m.operations[qn], op)
	}
	return b
}

func (b *Builder) AddInstance(instances ...*Instance) *Builder {
	for _, i := range instances {
		if _, ok := b.m.instances[i.FullName()]; ok {
			b.errs = append(b.errs, fmt.Errorf("%w: instance %s", ErrDuplicateDeclaration, i.FullName()))
			continue
		}
		b.m.instances[i.FullName()] = i
	}
	return b
}

// ResolveName resolves a namespace alias declared so far.
func (b *Builder) ResolveName(qn string) string {
	return b.m.ResolveName(qn)
}

// Element finds an element declared so far. See Model.Element.
func (b *Builder) Element(qn string) Element {
	return b.m.Element(qn)
}

// Term finds a term declared so far.
func (b *Builder) Term(qn string) *Term {
	return b.m.FindTerm(qn)
}

// Annotate attaches an annotation of term to target. A target may carry at
// most one annotation per (term, qualifier) pair.
func (b *Builder) Annotate(target Element, term *Term, qualifier string, e Expr) *Annotation {
	a := &Annotation{Target: target, Term: term, Qualifier: qualifier, Expr: e}
	for _, prev := range b.m.annotations[target] {
		if prev.Term == term && prev.Qualifier == qualifier {
			b.errs = append(b.errs, fmt.Errorf("%w: annotation %s#%s on %s", ErrDuplicateDeclaration, term.FullName(), qualifier, target.FullName()))
			return a
		}
	}
	b.m.annotations[target] = append(b.m.annotations[target], a)
	b.m.annotated = append(b.m.annotated, a)
	return a
}

// Build links the model and returns it. Unresolved operation references do
// not fail the build; they are marked on their OperationRef and fail only
// if evaluated. The returned error joins every declaration error found.
func (b *Builder) Build() (*Model, error) {
	m := b.m
	errs := b.errs
	for _, t := range m.types {
		if t.base != nil || t.BaseName == "" {
			continue
		}
		base := m.FindType(t.BaseName)
		if base == nil {
			errs = append(errs, fmt.Errorf("%w: base type %s of %s", ErrUnknownType, t.BaseName, t.FullName()))
			continue
		}
		t.base = base
	}
	for _, t := range m.Types() {
		n := 0
		for tt := t.base; tt != nil; tt = tt.base {
			if tt == t || n > len(m.types) {
				errs = append(errs, fmt.Errorf("%w: %s", ErrBaseTypeCycle, t.FullName()))
				t.base = nil
				break
			}
			n++
		}
	}
	for _, a := range m.annotated {
		Walk(a.Expr, func(e Expr) bool {
			if ap, ok := e.(*Apply); ok && ap.Ref != nil {
				b.resolve(ap.Ref)
			}
			return true
		})
	}
	return m, errors.Join(errs...)
}

func (b *Builder) resolve(ref *OperationRef) {
	if ref.Operation != nil || ref.Err != nil {
		return
	}
	op := b.m.FindOperation(ref.Namespace, ref.Name, ref.Arity)
	if op == nil {
		ref.Err = fmt.Errorf("%w: %s", ErrUnresolvedOperation, ref.Key())
		return
	}
	ref.Operation = op
	ref.Namespace = op.Namespace
}
