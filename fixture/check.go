package fixture

import (
	"fmt"
	"strings"

	"github.com/signadot/go-edm/edm"
	"github.com/signadot/go-edm/eval"
	"github.com/signadot/go-edm/value"
)

// Result is the outcome of one check.
type Result struct {
	Check *Check
	Want  *value.Value
	Got   *value.Value
	Err   error
	Pass  bool
	// Message explains a failure.
	Message string
}

// Eval evaluates term on the named target.
func (f *Fixture) Eval(target, term string, qualifier *string) (*value.Value, error) {
	el := f.Model.Element(target)
	if el == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, target)
	}
	return eval.GetTermValueByName(f.Model, el, term, qualifier, f.Ops)
}

// Run runs every check of the document in order.
func (f *Fixture) Run() []Result {
	res := make([]Result, len(f.Doc.Checks))
	for i := range f.Doc.Checks {
		res[i] = f.run(&f.Doc.Checks[i])
	}
	return res
}

func (f *Fixture) run(c *Check) Result {
	r := Result{Check: c}
	r.Got, r.Err = f.Eval(c.Target, c.Term, c.Qualifier)
	switch {
	case c.Error != "":
		switch {
		case r.Err == nil:
			r.Message = fmt.Sprintf("expected error containing %q, got %s", c.Error, sprint(r.Got))
		case !strings.Contains(r.Err.Error(), c.Error):
			r.Message = fmt.Sprintf("expected error containing %q, got %q", c.Error, r.Err)
		default:
			r.Pass = true
		}
	case r.Err != nil:
		r.Message = r.Err.Error()
	case c.Absent:
		r.Pass = r.Got == nil
		if !r.Pass {
			r.Message = "expected no value, got " + sprint(r.Got)
		}
	default:
		want, err := ValueFromYAML(c.Expect)
		if err != nil {
			r.Message = "bad expectation: " + err.Error()
			return r
		}
		r.Want = want
		r.Pass = r.Got != nil && value.Equal(want, r.Got)
		if !r.Pass {
			r.Message = "value mismatch"
		}
	}
	return r
}

func sprint(v *value.Value) string {
	if v == nil {
		return "nothing"
	}
	return value.Sprint(v)
}

// Targets lists the names of every annotated element, in declaration
// order and without repeats.
func (f *Fixture) Targets() []string {
	var res []string
	seen := map[edm.Element]bool{}
	for _, a := range f.Model.AllAnnotations() {
		if seen[a.Target] {
			continue
		}
		seen[a.Target] = true
		res = append(res, a.Target.FullName())
	}
	return res
}
