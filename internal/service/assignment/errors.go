package assignment

import "errors"

var (
	ErrInvalidAssignmentID       = errors.New("invalid assignment id")
	ErrReasonRequired            = errors.New("reason is required")
	ErrVerificationInputRequired = errors.New("verified items or a discrepancy report is required")

	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrBagAlreadyAssigned    = errors.New("bag already has an active assignment")
	ErrInvalidTransition     = errors.New("invalid assignment status transition")
	ErrNotAssignedAgent      = errors.New("assignment is not held by this agent")
	ErrOfferedToAnotherAgent = errors.New("assignment is offered to another agent")
	ErrAgentNotApproved      = errors.New("agent is not approved")
	ErrAgentBusy             = errors.New("agent already has an order in transit")
	ErrRegionMismatch        = errors.New("bag is outside the agent region")
	ErrForbidden             = errors.New("requester is not a participant of this assignment")
)
