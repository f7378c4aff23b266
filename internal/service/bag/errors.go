package bag

import "errors"

var (
	ErrInvalidBagID    = errors.New("invalid bag id")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentTooLong  = errors.New("comment is too long")

	ErrBagNotFound      = errors.New("bag not found")
	ErrActiveBagExists  = errors.New("you already have an active bag")
	ErrNotBagOwner      = errors.New("bag belongs to another user")
	ErrBagNotCancelable = errors.New("bag can no longer be canceled")
	ErrBagNotDelivered  = errors.New("bag has not been delivered yet")
	ErrNoAgentToRate    = errors.New("bag has no agent to rate")
)
