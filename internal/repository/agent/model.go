package agent

import "time"

type AgentDB struct {
	ID                   int64
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	PasswordHash         string
	Governorate          string
	IsAvailable          bool
	ApprovalStatus       string
	Points               int64
	Rewards              int64
	TotalOrdersDelivered int64
	AverageRating        float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type AgentModifyDB struct {
	ID             *int64
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	PasswordHash   *string
	Governorate    *string
	IsAvailable    *bool
	ApprovalStatus *string
}
