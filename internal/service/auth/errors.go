package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidGovernorate    = errors.New("invalid governorate")
	ErrWeakPassword          = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong       = errors.New("password must be at most 72 bytes")
	ErrInvalidRole           = errors.New("invalid role")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountPending     = errors.New("account is waiting for approval")
	ErrAccountRejected    = errors.New("account application was rejected")
)
