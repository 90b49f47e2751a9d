package eval

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/signadot/go-edm/value"
)

type Env map[string]any

// Script compiles src as an expr-lang program implementing an operation.
// When it runs, the arguments are available as the list args, as arg0,
// arg1, ... and under paramNames, in order. Arguments are converted with
// value.ToAny and the result with value.FromAny.
func Script(src string, paramNames ...string) (Func, error) {
	return script(src, len(paramNames), paramNames)
}

func script(src string, arity int, paramNames []string) (Func, error) {
	opts := append(exprOpts(), expr.Env(scriptEnv(arity, paramNames)), expr.AllowUndefinedVariables())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	return func(args []*value.Value) (*value.Value, error) {
		env := make(Env, 2*len(args)+1)
		all := make([]any, len(args))
		for i, a := range args {
			x := value.ToAny(a)
			all[i] = x
			env["arg"+strconv.Itoa(i)] = x
			if i < len(paramNames) {
				env[paramNames[i]] = x
			}
		}
		env["args"] = all
		res, err := expr.Run(prg, env)
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q: %w", src, err)
		}
		v, err := value.FromAny(res)
		if err != nil {
			return nil, fmt.Errorf("could not translate script result: %w", err)
		}
		return v, nil
	}, nil
}

// scriptEnv declares the argument names at compile time so that they shadow
// expr builtins of the same name, such as first or len.
func scriptEnv(arity int, paramNames []string) Env {
	env := Env{"args": []any{}}
	for i := range max(arity, len(paramNames)) {
		env["arg"+strconv.Itoa(i)] = nil
	}
	for _, n := range paramNames {
		env[n] = nil
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("isnull", func(params ...any) (any, error) {
			return params[0] == nil, nil
		},
			new(func(any) bool)),
		expr.Function("coalesce", func(params ...any) (any, error) {
			for _, p := range params {
				if p != nil {
					return p, nil
				}
			}
			return nil, nil
		}),
	}
}
