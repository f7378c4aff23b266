//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_agents_get_test
package admin_agents_get

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
	AgentsByApproval(ctx context.Context, status entities.AgentApprovalStatus) ([]entities.Agent, error)
}
