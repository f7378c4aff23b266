package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
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

func (u *User) Holder() Holder {
	return Holder{Kind: HolderUser, ID: u.ID}
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type UserModify struct {
	ID           *int64
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Password     *string
	PasswordHash *string
	Governorate  *string
}
