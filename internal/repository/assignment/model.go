package assignment

import "time"

type AssignmentDB struct {
	ID                int64
	BagID             int64
	OfferedAgentID    *int64
	AgentID           *int64
	Status            string
	UserPhone         string
	AgentPhone        string
	RejectionReason   string
	CancelReason      string
	DiscrepancyReport string
	ReleasedByAgentID *int64
	AssignedAt        time.Time
	AcceptedAt        *time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
	UpdatedAt         time.Time
}

type AssignmentModifyDB struct {
	ID                *int64
	BagID             *int64
	OfferedAgentID    *int64
	AgentID           *int64
	ClearAgent        bool
	Status            *string
	UserPhone         *string
	AgentPhone        *string
	RejectionReason   *string
	CancelReason      *string
	DiscrepancyReport *string
	ReleasedByAgentID *int64
	AcceptedAt        *time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
}

type AvailableAgentDB struct {
	ID            int64
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Governorate   string
	AverageRating float64
}
