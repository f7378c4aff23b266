package entities

import "time"

// BagStatusEvent публикуется в Kafka после каждого перехода статуса заказа.
type BagStatusEvent struct {
	EventID    string
	BagID      int64
	Status     BagStatus
	OccurredAt time.Time
}
