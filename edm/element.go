package edm

import (
	"github.com/signadot/go-edm/value"
)

// Element is a model element that annotations may target.
type Element interface {
	FullName() string
}

// Valued is implemented by elements that carry a runtime value, such as
// instances. The value is the default context for evaluating the element's
// annotations.
type Valued interface {
	Element
	Value() *value.Value
}

// StructuredType is an entity or complex type.
type StructuredType struct {
	Namespace  string
	Name       string
	Abstract   bool
	Open       bool
	BaseName   string
	Properties []*Property

	base *StructuredType
}

func NewStructuredType(namespace, name string) *StructuredType {
	return &StructuredType{Namespace: namespace, Name: name}
}

// WithBase sets the base type directly. Use BaseName instead when the base
// is declared elsewhere and should be resolved by the Builder.
func (t *StructuredType) WithBase(base *StructuredType) *StructuredType {
	t.base = base
	if base != nil {
		t.BaseName = base.FullName()
	}
	return t
}

func (t *StructuredType) WithProperties(props ...*Property) *StructuredType {
	for _, p := range props {
		p.DeclaringType = t
		t.Properties = append(t.Properties, p)
	}
	return t
}

func (t *StructuredType) FullName() string {
	return qualify(t.Namespace, t.Name)
}

// BaseType returns the base type, or nil for a root type.
func (t *StructuredType) BaseType() *StructuredType {
	return t.base
}

// FindProperty looks up a declared property on t and then on its base types.
func (t *StructuredType) FindProperty(name string) *Property {
	for tt := t; tt != nil; tt = tt.base {
		for _, p := range tt.Properties {
			if p.Name == name {
				return p
			}
		}
	}
	return nil
}

// IsDerivedFrom reports whether other is t or one of its base types.
func (t *StructuredType) IsDerivedFrom(other *StructuredType) bool {
	for tt := t; tt != nil; tt = tt.base {
		if tt == other {
			return true
		}
	}
	return false
}

type Property struct {
	Name          string
	Type          string
	Nullable      bool
	DeclaringType *StructuredType
}

func NewProperty(name, typ string) *Property {
	return &Property{Name: name, Type: typ, Nullable: true}
}

func (p *Property) FullName() string {
	if p.DeclaringType == nil {
		return p.Name
	}
	return p.DeclaringType.FullName() + "/" + p.Name
}

type EnumMember struct {
	Name  string
	Value int64
}

type EnumType struct {
	Namespace      string
	Name           string
	UnderlyingType string
	IsFlags        bool
	Members        []EnumMember
}

func (t *EnumType) FullName() string {
	return qualify(t.Namespace, t.Name)
}

// Member returns the member with the given value.
func (t *EnumType) Member(v int64) (EnumMember, bool) {
	for _, m := range t.Members {
		if m.Value == v {
			return m, true
		}
	}
	return EnumMember{}, false
}

// Term is a vocabulary term: a named, typed tag that annotations apply.
type Term struct {
	Namespace string
	Name      string
	Type      string
	AppliesTo []string
}

func NewTerm(namespace, name, typ string) *Term {
	return &Term{Namespace: namespace, Name: name, Type: typ}
}

func (t *Term) FullName() string {
	return qualify(t.Namespace, t.Name)
}

type Parameter struct {
	Name string
	Type string
}

// Operation is a declared function. Overloads share Namespace and Name and
// differ in the number of parameters.
type Operation struct {
	Namespace  string
	Name       string
	Parameters []Parameter
	ReturnType string
}

func NewOperation(namespace, name, returnType string, params ...Parameter) *Operation {
	return &Operation{Namespace: namespace, Name: name, ReturnType: returnType, Parameters: params}
}

func (o *Operation) FullName() string {
	return qualify(o.Namespace, o.Name)
}

func (o *Operation) Key() OperationKey {
	return OperationKey{Namespace: o.Namespace, Name: o.Name, Arity: len(o.Parameters)}
}

// Instance is a named runtime value of a structured type, such as a
// singleton. It is an annotation target in its own right and its value is
// the evaluation context for its annotations.
type Instance struct {
	Namespace string
	Name      string
	Type      *StructuredType

	value *value.Value
}

func NewInstance(namespace, name string, typ *StructuredType, v *value.Value) *Instance {
	return &Instance{Namespace: namespace, Name: name, Type: typ, value: v}
}

func (i *Instance) FullName() string {
	return qualify(i.Namespace, i.Name)
}

func (i *Instance) Value() *value.Value {
	return i.value
}

// Annotation applies a term to a target, optionally under a qualifier.
type Annotation struct {
	Target    Element
	Term      *Term
	Qualifier string
	Expr      Expr
}
