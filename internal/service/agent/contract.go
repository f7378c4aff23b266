//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_test
package agent

import (
	"context"

	"recycling/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
	Update(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error)
	ListByApproval(ctx context.Context, status entities.AgentApprovalStatus) ([]entities.Agent, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipient entities.Holder, title, message string, kind entities.NotificationType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
