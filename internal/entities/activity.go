package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Activity struct {
	ID        int64
	Holder    Holder
	Title     string
	Points    int64
	Type      ActivityType
	CreatedAt time.Time
}

type ActivityType string

const (
	ActivityEarn      ActivityType = "earn"
	ActivityRedeem    ActivityType = "redeem"
	ActivityCancel    ActivityType = "cancel"
	ActivityDelivered ActivityType = "delivered"
	ActivityRejected  ActivityType = "rejected"
	ActivityAccepted  ActivityType = "accepted"
	ActivityPlaced    ActivityType = "placed"
	ActivityCanceled  ActivityType = "canceled"
)

func (t ActivityType) String() string {
	return string(t)
}

// Credit начисление за доставленный заказ. Пишется в журнал и в счётчики владельца одной транзакцией.
type Credit struct {
	Holder    Holder
	Title     string
	Type      ActivityType
	Points    int64
	CO2       decimal.Decimal
	Items     int64
	Delivered int64
}
