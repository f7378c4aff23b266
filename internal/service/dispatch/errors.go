package dispatch

import "errors"

var (
	ErrStatusMismatch  = errors.New("bag status mismatch between event and database")
	ErrUndefinedStatus = errors.New("undefined bag status")
	ErrInvalidEvent    = errors.New("bag id and status are required")
)
