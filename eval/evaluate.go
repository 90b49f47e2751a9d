package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/go-edm/debug"
	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/value"
)

// Func implements an operation. Arguments arrive evaluated, in declaration
// order; a nil result stands for null.
type Func func(args []*value.Value) (*value.Value, error)

// Operations maps operation overloads to their implementations.
type Operations interface {
	Lookup(edm.OperationKey) (Func, bool)
}

// Evaluate evaluates e against ctx, the structured value relative paths
// start from. ops may be nil when e applies no operations.
//
// Evaluation is a single pass with no side effects of its own. The first
// error stops it.
func Evaluate(e edm.Expr, ctx *value.Value, ops Operations) (*value.Value, error) {
	if e == nil {
		return nil, &Error{Message: "nil expression"}
	}
	res, err := evaluate(e, ctx, ops)
	if err != nil {
		return nil, err
	}
	if debug.Eval() {
		debug.Logf("eval %s -> %s\n", e, value.Sprint(res))
	}
	return res, nil
}

func evaluate(e edm.Expr, ctx *value.Value, ops Operations) (*value.Value, error) {
	switch x := e.(type) {
	case *edm.Constant:
		if x.Value == nil {
			return value.Null(), nil
		}
		return x.Value, nil
	case *edm.Null:
		return value.Null(), nil
	case *edm.Path:
		return resolvePath(x, ctx)
	case *edm.Record:
		kvs := make([]value.KeyVal, len(x.Props))
		for i, p := range x.Props {
			v, err := evaluate(p.Expr, ctx, ops)
			if err != nil {
				return nil, err
			}
			kvs[i] = value.KeyVal{Key: p.Name, Val: v}
		}
		return value.FromKeyVals(x.Type, kvs), nil
	case *edm.Collection:
		elems := make([]*value.Value, len(x.Elements))
		for i, el := range x.Elements {
			v, err := evaluate(el, ctx, ops)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.FromSlice("", elems), nil
	case *edm.Apply:
		return apply(x, ctx, ops)
	case *edm.If:
		cond, err := evaluate(x.Cond, ctx, ops)
		if err != nil {
			return nil, err
		}
		if cond.Kind != value.BooleanKind {
			return nil, &Error{
				Expr:    x,
				Message: fmt.Sprintf("condition is %s, not Boolean", cond.Kind),
				Err:     ErrTypeMismatch,
			}
		}
		if cond.Bool {
			return evaluate(x.Then, ctx, ops)
		}
		return evaluate(x.Else, ctx, ops)
	case nil:
		return nil, &Error{Message: "nil expression"}
	default:
		return nil, &Error{Expr: e, Message: fmt.Sprintf("unknown expression %T", e)}
	}
}

func resolvePath(p *edm.Path, ctx *value.Value) (*value.Value, error) {
	if p.Path == "" {
		if ctx == nil {
			return value.Null(), nil
		}
		return ctx, nil
	}
	cur := ctx
	for _, seg := range strings.Split(p.Path, "/") {
		if cur == nil || cur.Kind != value.StructuredKind {
			kind := "no context"
			if cur != nil {
				kind = cur.Kind.String()
			}
			return nil, &Error{
				Expr:    p,
				Message: fmt.Sprintf("cannot select %q from %s", seg, kind),
				Err:     ErrPathResolution,
			}
		}
		next, ok := cur.Get(seg)
		if !ok {
			return nil, &Error{
				Expr:    p,
				Message: fmt.Sprintf("no property %q", seg),
				Err:     ErrPathResolution,
			}
		}
		cur = next
	}
	return cur, nil
}

func apply(a *edm.Apply, ctx *value.Value, ops Operations) (*value.Value, error) {
	args := make([]*value.Value, len(a.Args))
	for i, arg := range a.Args {
		v, err := evaluate(arg, ctx, ops)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if a.Ref == nil {
		return nil, &Error{Expr: a, Message: "apply has no operation reference", Err: ErrUnresolvedOperation}
	}
	key := a.Ref.Key()
	if !a.Ref.Resolved() {
		msg := "operation " + key.String() + " is not declared"
		if a.Ref.Err != nil {
			msg = a.Ref.Err.Error()
		}
		return nil, &Error{Expr: a, Message: msg, Err: ErrUnresolvedOperation}
	}
	var (
		f  Func
		ok bool
	)
	if ops != nil {
		f, ok = ops.Lookup(key)
	}
	if !ok {
		return nil, &Error{
			Expr:    a,
			Message: "no implementation registered for " + key.String(),
			Err:     ErrUnresolvedOperation,
		}
	}
	if debug.Apply() {
		debug.Logf("apply %s %v\n", key, sprintArgs(args))
	}
	res, err := f(args)
	if err != nil {
		return nil, &Error{Expr: a, Message: fmt.Sprintf("%s: %v", key, err), Err: err}
	}
	if res == nil {
		return value.Null(), nil
	}
	return res, nil
}

func sprintArgs(args []*value.Value) []string {
	res := make([]string, len(args))
	for i, a := range args {
		res[i] = value.Sprint(a)
	}
	return res
}
