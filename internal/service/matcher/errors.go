package matcher

import "errors"

var (
	ErrInvalidBagID      = errors.New("invalid bag id")
	ErrBagNotAssignable  = errors.New("bag is not waiting for an agent")
	ErrNoAvailableAgents = errors.New("no available agents in the region")
)
