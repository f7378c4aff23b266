//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_agent_approval_put_test
package admin_agent_approval_put

import (
	"context"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetApproval(ctx context.Context, id int64, status entities.AgentApprovalStatus) (*entities.Agent, error)
}
