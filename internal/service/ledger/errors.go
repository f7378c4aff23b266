package ledger

import "errors"

var (
	ErrInvalidHolder       = errors.New("invalid holder")
	ErrHolderNotFound      = errors.New("holder not found")
	ErrEmptyTitle          = errors.New("activity title is required")
	ErrInvalidActivityType = errors.New("invalid activity type")
	ErrInvalidPointsSign   = errors.New("points sign does not match activity type")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientRewards = errors.New("insufficient rewards")
)
