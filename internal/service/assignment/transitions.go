package assignment

import (
	"fmt"

	"recycling/internal/entities"
)

var transitions = map[entities.AssignmentStatus][]entities.AssignmentStatus{
	entities.AssignmentPending:   {entities.AssignmentAccepted, entities.AssignmentCanceled},
	entities.AssignmentAccepted:  {entities.AssignmentInTransit, entities.AssignmentPending, entities.AssignmentRejected},
	entities.AssignmentInTransit: {entities.AssignmentDelivered, entities.AssignmentRejected},
	entities.AssignmentRejected:  {entities.AssignmentCanceled},
}

func CanTransition(from, to entities.AssignmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to entities.AssignmentStatus) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// BagStatusFor статус заказа, который зеркалит статус назначения.
func BagStatusFor(status entities.AssignmentStatus, offered bool) entities.BagStatus {
	switch status {
	case entities.AssignmentPending:
		if offered {
			return entities.BagAssigned
		}
		return entities.BagPending
	case entities.AssignmentAccepted:
		return entities.BagAccepted
	case entities.AssignmentInTransit:
		return entities.BagInTransit
	case entities.AssignmentDelivered:
		return entities.BagDelivered
	case entities.AssignmentRejected:
		return entities.BagRejected
	default:
		return entities.BagCanceled
	}
}
