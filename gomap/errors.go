package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrOverflow                    = errors.New("overflow")
	ErrUnsupportedConversion       = errors.New("unsupported conversion")
	ErrUnsupportedTargetShape      = errors.New("unsupported target shape")
	ErrNotInstantiable             = errors.New("not instantiable")
	ErrHookTypeMismatch            = errors.New("hook type mismatch")
	ErrDuplicateProperty           = errors.New("duplicate property")
	ErrUnsupportedCollectionTarget = errors.New("unsupported collection target")
	ErrKindShapeMismatch           = errors.New("kind shape mismatch")
	ErrTypeMismatch                = errors.New("type mismatch")
)

// MaterializeError represents an error during materialization
type MaterializeError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MaterializeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("materialize error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("materialize error: %s", e.Message)
}

func (e *MaterializeError) Unwrap() error {
	return e.Err
}

func newError(err error, format string, args ...any) *MaterializeError {
	return &MaterializeError{Message: fmt.Sprintf(format, args...), Err: err}
}

// atPath sets the field path of err when it is a MaterializeError that has
// none yet.
func atPath(err error, path string) error {
	var me *MaterializeError
	if errors.As(err, &me) && me.FieldPath == "" {
		me.FieldPath = path
	}
	return err
}

// typeName names F for diagnostics without reflection.
func typeName[F any]() string {
	s := fmt.Sprintf("%T", (*F)(nil))
	return s[1:]
}
