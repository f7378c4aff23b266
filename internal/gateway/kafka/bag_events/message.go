package bag_events

import (
	"time"

	"recycling/internal/entities"
)

// bagStatusMessage формат сообщения в топике, его же читает worker-bag-status-changed.
type bagStatusMessage struct {
	EventID    string    `json:"event_id"`
	BagID      int64     `json:"bag_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func toMessage(event entities.BagStatusEvent) bagStatusMessage {
	return bagStatusMessage{
		EventID:    event.EventID,
		BagID:      event.BagID,
		Status:     event.Status.String(),
		OccurredAt: event.OccurredAt,
	}
}
