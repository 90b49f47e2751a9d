package edm

import "errors"

var (
	ErrTermNotFound         = errors.New("term not found")
	ErrUnresolvedOperation  = errors.New("unresolved operation")
	ErrDuplicateDeclaration = errors.New("duplicate declaration")
	ErrUnknownType          = errors.New("unknown type")
	ErrBaseTypeCycle        = errors.New("base type cycle")
)
