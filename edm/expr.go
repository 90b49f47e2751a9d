package edm

import (
	"fmt"
	"strings"

	"github.com/signadot/go-edm/value"
)

// Expr is an annotation expression. The set of implementations is closed:
// *Constant, *Path, *Record, *Collection, *Apply, *If and *Null.
type Expr interface {
	String() string
	isExpr()
}

type Constant struct {
	Value *value.Value
}

type Path struct {
	Path string
}

type PropertyAssignment struct {
	Name string
	Expr Expr
}

type Record struct {
	Type  string
	Props []PropertyAssignment
}

type Collection struct {
	Elements []Expr
}

// OperationRef names the operation an Apply calls. Ref resolution happens
// once, when the model is built: Operation is set when an overload of the
// same arity is declared, otherwise Err records why not.
type OperationRef struct {
	Namespace string
	Name      string
	Arity     int
	Operation *Operation
	Err       error
}

type Apply struct {
	Ref  *OperationRef
	Args []Expr
}

type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

type Null struct{}

func (*Constant) isExpr()   {}
func (*Path) isExpr()       {}
func (*Record) isExpr()     {}
func (*Collection) isExpr() {}
func (*Apply) isExpr()      {}
func (*If) isExpr()         {}
func (*Null) isExpr()       {}

var nullExpr = &Null{}

func NullExpr() *Null {
	return nullExpr
}

func Const(v *value.Value) *Constant {
	return &Constant{Value: v}
}

func Int(i int64) *Constant {
	return Const(value.FromInt(i))
}

func Float(f float64) *Constant {
	return Const(value.FromFloat(f))
}

func String(s string) *Constant {
	return Const(value.FromString(s))
}

func Bool(b bool) *Constant {
	return Const(value.FromBool(b))
}

func NewPath(path string) *Path {
	return &Path{Path: path}
}

func Prop(name string, e Expr) PropertyAssignment {
	return PropertyAssignment{Name: name, Expr: e}
}

func NewRecord(typ string, props ...PropertyAssignment) *Record {
	return &Record{Type: typ, Props: props}
}

func NewCollection(elems ...Expr) *Collection {
	return &Collection{Elements: elems}
}

// NewApply returns an unresolved call of the operation with the given
// qualified name. Building the model resolves it.
func NewApply(qualifiedName string, args ...Expr) *Apply {
	ns, name := SplitQualifiedName(qualifiedName)
	return &Apply{
		Ref:  &OperationRef{Namespace: ns, Name: name, Arity: len(args)},
		Args: args,
	}
}

func NewIf(cond, then, els Expr) *If {
	return &If{Cond: cond, Then: then, Else: els}
}

func (r *OperationRef) FullName() string {
	return qualify(r.Namespace, r.Name)
}

func (r *OperationRef) Key() OperationKey {
	return OperationKey{Namespace: r.Namespace, Name: r.Name, Arity: r.Arity}
}

func (r *OperationRef) Resolved() bool {
	return r != nil && r.Operation != nil
}

// Parameters returns the declared parameters of the resolved operation, or
// nil when the reference is unresolved.
func (r *OperationRef) Parameters() []Parameter {
	if r.Operation == nil {
		return nil
	}
	return r.Operation.Parameters
}

func (c *Constant) String() string {
	return "Constant(" + value.Sprint(c.Value) + ")"
}

func (p *Path) String() string {
	return "Path(" + p.Path + ")"
}

func (r *Record) String() string {
	names := make([]string, len(r.Props))
	for i, p := range r.Props {
		names[i] = p.Name
	}
	return fmt.Sprintf("Record(%s{%s})", r.Type, strings.Join(names, ", "))
}

func (c *Collection) String() string {
	return fmt.Sprintf("Collection(%d)", len(c.Elements))
}

func (a *Apply) String() string {
	if a.Ref == nil {
		return "Apply(?)"
	}
	return "Apply(" + a.Ref.Key().String() + ")"
}

func (i *If) String() string {
	return "If(" + i.Cond.String() + ")"
}

func (*Null) String() string {
	return "Null"
}

// Walk calls f for e and, when f returns true, for each subexpression in
// evaluation order.
func Walk(e Expr, f func(Expr) bool) {
	if e == nil || !f(e) {
		return
	}
	switch x := e.(type) {
	case *Record:
		for _, p := range x.Props {
			Walk(p.Expr, f)
		}
	case *Collection:
		for _, el := range x.Elements {
			Walk(el, f)
		}
	case *Apply:
		for _, a := range x.Args {
			Walk(a, f)
		}
	case *If:
		Walk(x.Cond, f)
		Walk(x.Then, f)
		Walk(x.Else, f)
	}
}
