package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserDB struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	PasswordHash  string
	Governorate   string
	Points        int64
	Rewards       int64
	CO2Saved      decimal.Decimal
	ItemsRecycled int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type UserModifyDB struct {
	ID           *int64
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	PasswordHash *string
	Governorate  *string
}
