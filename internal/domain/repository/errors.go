package repository

import "errors"

// Errors returned by repository implementations in place of driver errors.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	ErrUnavailable         = errors.New("data store unavailable")
)
