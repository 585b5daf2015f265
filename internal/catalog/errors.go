package catalog

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown type kind")
	ErrUnknownMorph  = errors.New("unknown morph")
	ErrUnknownRef    = errors.New("unknown type reference")
	ErrUnknownScope  = errors.New("unknown scope")
	ErrInvalidDecl   = errors.New("invalid type declaration")
	ErrInvalidConfig = errors.New("invalid catalog config")
)
