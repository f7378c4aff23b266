package store

import "errors"

var (
	ErrInvalidBranchID = errors.New("invalid branch id")
	ErrBranchNotFound  = errors.New("branch not found")
)
