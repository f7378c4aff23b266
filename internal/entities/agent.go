package entities

import "time"

type Agent struct {
	ID                   int64
	FirstName            string
	LastName             string
	Email                string
	Phone                string
	PasswordHash         string
	Governorate          string
	IsAvailable          bool
	Approval             AgentApprovalStatus
	Points               int64
	Rewards              int64
	TotalOrdersDelivered int64
	AverageRating        float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (a *Agent) Holder() Holder {
	return Holder{Kind: HolderAgent, ID: a.ID}
}

func (a *Agent) FullName() string {
	return a.FirstName + " " + a.LastName
}

type AgentApprovalStatus string

const (
	AgentPending  AgentApprovalStatus = "pending"
	AgentApproved AgentApprovalStatus = "approved"
	AgentRejected AgentApprovalStatus = "rejected"
)

func (s AgentApprovalStatus) String() string {
	return string(s)
}

type AgentModify struct {
	ID           *int64
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Password     *string
	PasswordHash *string
	Governorate  *string
	IsAvailable  *bool
	Approval     *AgentApprovalStatus
}

// AgentSummary то, что покупатель видит об агенте в своём заказе.
type AgentSummary struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	AverageRating float64
}
