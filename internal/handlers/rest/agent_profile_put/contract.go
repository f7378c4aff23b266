//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=agent_profile_put_test
package agent_profile_put

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
	UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error)
}
