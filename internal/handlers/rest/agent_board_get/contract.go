//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_board_get_test
package agent_board_get

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
	AgentBoard(ctx context.Context, agentID int64) (*entities.AgentBoard, error)
}
