package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Bag struct {
	ID        int64
	UserID    int64
	Status    BagStatus
	Latitude  *float64
	Longitude *float64
	Items     []BagItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Bag) TotalPoints() int64 {
	var total int64
	for _, item := range b.Items {
		total += item.Points
	}
	return total
}

func (b *Bag) TotalQuantity() int64 {
	var total int64
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

func (b *Bag) TotalCO2() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items {
		total = total.Add(item.CO2)
	}
	return total
}

type BagStatus string

const (
	BagPending   BagStatus = "pending"
	BagAssigned  BagStatus = "assigned"
	BagAccepted  BagStatus = "accepted"
	BagInTransit BagStatus = "in_transit"
	BagDelivered BagStatus = "delivered"
	BagRejected  BagStatus = "rejected"
	BagCanceled  BagStatus = "canceled"
	BagCompleted BagStatus = "completed"
)

func (s BagStatus) String() string {
	return string(s)
}

// IsOpen заказ ещё в работе и блокирует создание нового.
func (s BagStatus) IsOpen() bool {
	switch s {
	case BagPending, BagAssigned, BagAccepted, BagInTransit:
		return true
	default:
		return false
	}
}

type BagItem struct {
	ID         int64
	BagID      int64
	ItemTypeID int64
	ItemType   string
	Quantity   int64
	Points     int64
	CO2        decimal.Decimal
}

type ItemType struct {
	ID            int64
	Name          string
	PointsPerUnit int64
	CO2PerUnit    decimal.Decimal
}

// BagItemRequest позиция в заказе до расчёта баллов.
type BagItemRequest struct {
	ItemTypeID int64
	Quantity   int64
}

type BagModify struct {
	ID        *int64
	UserID    *int64
	Status    *BagStatus
	Latitude  *float64
	Longitude *float64
}

// BagOverview текущий заказ покупателя вместе с назначением.
type BagOverview struct {
	Bag             Bag
	Assignment      *Assignment
	Agent           *AgentSummary
	RejectionReason string
}
