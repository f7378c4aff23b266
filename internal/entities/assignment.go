package entities

import "time"

type Assignment struct {
	ID                int64
	BagID             int64
	OfferedAgentID    *int64
	AgentID           *int64
	Status            AssignmentStatus
	UserPhone         string
	AgentPhone        string
	RejectionReason   string
	CancelReason      string
	DiscrepancyReport string
	// ReleasedByAgentID последний агент, отказавшийся от заказа до начала доставки
	ReleasedByAgentID *int64
	AssignedAt        time.Time
	AcceptedAt        *time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
	UpdatedAt         time.Time
}

// IsHeldBy агент принял это назначение.
func (a *Assignment) IsHeldBy(agentID int64) bool {
	return a.AgentID != nil && *a.AgentID == agentID
}

type AssignmentStatus string

const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentInTransit AssignmentStatus = "in_transit"
	AssignmentDelivered AssignmentStatus = "delivered"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCanceled  AssignmentStatus = "canceled"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// IsActive назначение не в терминальном статусе. Для заказа активно не больше одного.
func (s AssignmentStatus) IsActive() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentInTransit:
		return true
	default:
		return false
	}
}

// ActiveAssignmentStatuses статусы, которые учитываются при подборе наименее загруженного агента.
var ActiveAssignmentStatuses = []AssignmentStatus{
	AssignmentPending,
	AssignmentAccepted,
	AssignmentInTransit,
}

type AssignmentModify struct {
	ID                *int64
	BagID             *int64
	OfferedAgentID    *int64
	AgentID           *int64
	ClearAgent        bool
	Status            *AssignmentStatus
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

// AgentBoard что видит агент: предложенные ему заказы и взятые в работу.
type AgentBoard struct {
	Offered []Assignment
	Active  []Assignment
}
