package edm

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Model is a read-only schema model. It is built once by a Builder and may
// then be shared between goroutines.
type Model struct {
	aliases     map[string]string
	types       map[string]*StructuredType
	enums       map[string]*EnumType
	terms       map[string]*Term
	operations  map[string][]*Operation
	instances   map[string]*Instance
	annotations map[Element][]*Annotation
	annotated   []*Annotation
}

func newModel() *Model {
	return &Model{
		aliases:     map[string]string{},
		types:       map[string]*StructuredType{},
		enums:       map[string]*EnumType{},
		terms:       map[string]*Term{},
		operations:  map[string][]*Operation{},
		instances:   map[string]*Instance{},
		annotations: map[Element][]*Annotation{},
	}
}

// ResolveName replaces a namespace alias prefix of a qualified name with the
// namespace it stands for.
func (m *Model) ResolveName(qn string) string {
	ns, name := SplitQualifiedName(qn)
	if full, ok := m.aliases[ns]; ok {
		return qualify(full, name)
	}
	return qn
}

func (m *Model) resolveNamespace(ns string) string {
	if full, ok := m.aliases[ns]; ok {
		return full
	}
	return ns
}

func (m *Model) FindType(qn string) *StructuredType {
	return m.types[m.ResolveName(qn)]
}

func (m *Model) FindEnum(qn string) *EnumType {
	return m.enums[m.ResolveName(qn)]
}

// FindTerm resolves a qualified term name, honouring namespace aliases. It
// returns nil when no such term is declared.
func (m *Model) FindTerm(qn string) *Term {
	return m.terms[m.ResolveName(qn)]
}

func (m *Model) FindInstance(qn string) *Instance {
	return m.instances[m.ResolveName(qn)]
}

// FindOperation returns the overload of namespace.name taking exactly arity
// parameters.
func (m *Model) FindOperation(namespace, name string, arity int) *Operation {
	for _, op := range m.operations[qualify(m.resolveNamespace(namespace), name)] {
		if len(op.Parameters) == arity {
			return op
		}
	}
	return nil
}

// Operations returns all overloads declared under a qualified name.
func (m *Model) Operations(qn string) []*Operation {
	return slices.Clone(m.operations[m.ResolveName(qn)])
}

// Annotations returns the annotations declared directly on target, in
// declaration order.
func (m *Model) Annotations(target Element) []*Annotation {
	return m.annotations[target]
}

// AllAnnotations returns every annotation in the model in declaration
// order.
func (m *Model) AllAnnotations() []*Annotation {
	return slices.Clone(m.annotated)
}

func (m *Model) Terms() []*Term {
	return sortedByName(m.terms)
}

func (m *Model) Types() []*StructuredType {
	return sortedByName(m.types)
}

func (m *Model) Enums() []*EnumType {
	return sortedByName(m.enums)
}

func (m *Model) Instances() []*Instance {
	return sortedByName(m.instances)
}

func sortedByName[E Element](m map[string]E) []E {
	return slices.SortedFunc(maps.Values(m), func(a, b E) int {
		return cmp.Compare(a.FullName(), b.FullName())
	})
}

// Element finds a declared element by qualified name: a structured type,
// enum type, term or instance, or a property written "NS.Type/Property".
func (m *Model) Element(qn string) Element {
	if tn, prop, ok := strings.Cut(qn, "/"); ok {
		t := m.FindType(tn)
		if t == nil {
			return nil
		}
		if p := t.FindProperty(prop); p != nil {
			return p
		}
		return nil
	}
	if t := m.FindType(qn); t != nil {
		return t
	}
	if i := m.FindInstance(qn); i != nil {
		return i
	}
	if e := m.FindEnum(qn); e != nil {
		return e
	}
	if t := m.FindTerm(qn); t != nil {
		return t
	}
	return nil
}
