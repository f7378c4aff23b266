package ledger

import (
	"strings"

	"recycling/internal/entities"
)

func isValidHolder(holder entities.Holder) bool {
	return holder.Kind.IsValid() && holder.ID > 0
}

func isValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}

// isValidSign начисления неотрицательны, списания неположительны, статусные записи нулевые.
func isValidSign(kind entities.ActivityType, points int64) (bool, error) {
	switch kind {
	case entities.ActivityEarn, entities.ActivityDelivered:
		return points >= 0, nil
	case entities.ActivityRedeem, entities.ActivityCancel:
		return points <= 0, nil
	case entities.ActivityRejected, entities.ActivityAccepted, entities.ActivityPlaced, entities.ActivityCanceled:
		return points == 0, nil
	default:
		return false, ErrInvalidActivityType
	}
}
