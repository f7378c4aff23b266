//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_history_get_test
package agent_history_get

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
	AgentHistory(ctx context.Context, agentID int64) ([]entities.Assignment, error)
}
