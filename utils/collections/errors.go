package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
	ErrInvalidKey      = errors.New("invalid key")
	ErrTableFull       = errors.New("table full")
)
