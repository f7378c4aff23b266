package bag

import (
	"time"

	"github.com/shopspring/decimal"
)

type BagDB struct {
	ID        int64
	UserID    int64
	Status    string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type BagItemDB struct {
	ID         int64
	BagID      int64
	ItemTypeID int64
	ItemType   string
	Quantity   int64
	Points     int64
	CO2        decimal.Decimal
}

type ItemTypeDB struct {
	ID            int64
	Name          string
	PointsPerUnit int64
	CO2PerUnit    decimal.Decimal
}
