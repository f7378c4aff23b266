package agent

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAgentID        = errors.New("invalid agent id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidGovernorate    = errors.New("invalid governorate")
	ErrInvalidApproval       = errors.New("invalid approval status")

	ErrAgentNotFound    = errors.New("agent not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrAgentNotApproved = errors.New("agent is not approved")
)
