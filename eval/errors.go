package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/go-edm/edm"
)

var (
	ErrPathResolution      = errors.New("path resolution")
	ErrUnresolvedOperation = fmt.Errorf("%w", edm.ErrUnresolvedOperation)
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrTermNotFound        = edm.ErrTermNotFound
)

// Error reports a failure evaluating Expr.
type Error struct {
	Expr    edm.Expr
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Expr != nil {
		return fmt.Sprintf("eval error at %s: %s", e.Expr, e.Message)
	}
	return fmt.Sprintf("eval error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
