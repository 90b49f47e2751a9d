package fixture

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-edm/debug"
	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/eval"
	"github.com/signadot/go-edm/value"
)

var (
	ErrInvalid       = errors.New("invalid fixture")
	ErrUnknownTarget = errors.New("unknown target")
)

// Fixture is a loaded document with its model and operation table.
type Fixture struct {
	Doc   *Document
	Model *edm.Model
	Ops   *eval.Table
}

func LoadFile(path string) (*Fixture, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Load(d)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return f, nil
}

func Load(d []byte) (*Fixture, error) {
	doc := &Document{}
	if err := yaml.UnmarshalWithOptions(d, doc, yaml.UseOrderedMap(), yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return Build(doc)
}

// Build builds the model and operation table of doc. The table holds the
// canonical functions and every operation with a script.
func Build(doc *Document) (*Fixture, error) {
	if debug.Fixture() {
		debug.LogAny(doc)
	}
	b := edm.NewBuilder()
	for alias, ns := range doc.Aliases {
		b.Alias(alias, ns)
	}
	split := func(qn string) (string, string) {
		return edm.SplitQualifiedName(b.ResolveName(qn))
	}
	for i := range doc.Types {
		b.AddType(typeFromDecl(&doc.Types[i], split))
	}
	for i := range doc.Enums {
		b.AddEnum(enumFromDecl(&doc.Enums[i], split))
	}
	for i := range doc.Terms {
		td := &doc.Terms[i]
		ns, name := split(td.Name)
		term := edm.NewTerm(ns, name, td.Type)
		term.AppliesTo = td.AppliesTo
		b.AddTerm(term)
	}
	ops := eval.Canonical()
	if doc.Canonical {
		b.AddOperation(eval.CanonicalOperations()...)
	}
	var errs []error
	for i := range doc.Operations {
		od := &doc.Operations[i]
		op := operationFromDecl(od, split)
		b.AddOperation(op)
		if od.Script == "" {
			continue
		}
		names := make([]string, len(od.Params))
		for j, p := range od.Params {
			names[j] = p.Name
		}
		if err := ops.RegisterScript(op.Key(), od.Script, names...); err != nil {
			errs = append(errs, err)
		}
	}
	for i := range doc.Instances {
		id := &doc.Instances[i]
		t, ok := b.Element(id.Type).(*edm.StructuredType)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: instance %s has type %s", edm.ErrUnknownType, id.Name, id.Type))
			continue
		}
		v, err := ValueFromYAML(id.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("instance %s: %w", id.Name, err))
			continue
		}
		if v.Kind == value.StructuredKind && v.Type == "" {
			v = v.WithType(t.FullName())
		}
		ns, name := split(id.Name)
		b.AddInstance(edm.NewInstance(ns, name, t, v))
	}
	for i := range doc.Annotations {
		ad := &doc.Annotations[i]
		target := b.Element(ad.Target)
		if target == nil {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownTarget, ad.Target))
			continue
		}
		term := b.Term(ad.Term)
		if term == nil {
			errs = append(errs, fmt.Errorf("%w: %s", edm.ErrTermNotFound, ad.Term))
			continue
		}
		e, err := ExprFromYAML(ad.Expr)
		if err != nil {
			errs = append(errs, fmt.Errorf("annotation %s on %s: %w", ad.Term, ad.Target, err))
			continue
		}
		b.Annotate(target, term, ad.Qualifier, e)
	}
	m, err := b.Build()
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if debug.Fixture() {
		debug.Logf("fixture: %d types, %d terms, %d annotations, %d operations\n",
			len(m.Types()), len(m.Terms()), len(m.AllAnnotations()), len(ops.Keys()))
	}
	return &Fixture{Doc: doc, Model: m, Ops: ops}, nil
}

type splitFunc func(qn string) (namespace, name string)

func typeFromDecl(td *TypeDecl, split splitFunc) *edm.StructuredType {
	ns, name := split(td.Name)
	t := edm.NewStructuredType(ns, name)
	t.Abstract = td.Abstract
	t.Open = td.Open
	t.BaseName = td.Base
	for _, pd := range td.Properties {
		p := edm.NewProperty(pd.Name, pd.Type)
		if pd.Nullable != nil {
			p.Nullable = *pd.Nullable
		}
		t.WithProperties(p)
	}
	return t
}

func enumFromDecl(ed *EnumDecl, split splitFunc) *edm.EnumType {
	ns, name := split(ed.Name)
	e := &edm.EnumType{Namespace: ns, Name: name, UnderlyingType: ed.Underlying, IsFlags: ed.Flags}
	if e.UnderlyingType == "" {
		e.UnderlyingType = "Edm.Int32"
	}
	for _, m := range ed.Members {
		e.Members = append(e.Members, edm.EnumMember{Name: m.Name, Value: m.Value})
	}
	return e
}

func operationFromDecl(od *OperationDecl, split splitFunc) *edm.Operation {
	ns, name := split(od.Name)
	params := make([]edm.Parameter, len(od.Params))
	for i, p := range od.Params {
		params[i] = edm.Parameter{Name: p.Name, Type: p.Type}
	}
	return edm.NewOperation(ns, name, od.Returns, params...)
}
