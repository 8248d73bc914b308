package services

import "errors"

// Domain errors. Handlers map these onto HTTP statuses; anything else coming
// out of a service is treated as an internal error.
var (
	ErrNotFound           = errors.New("record not found")
	ErrDuplicate          = errors.New("already registered")
	ErrSectionFull        = errors.New("section has no remaining seats")
	ErrForbidden          = errors.New("not allowed for this account")
	ErrInvalidCredentials = errors.New("invalid code or password")
)
