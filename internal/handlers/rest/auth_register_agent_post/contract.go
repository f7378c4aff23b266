//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_register_agent_post_test
package auth_register_agent_post

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
	RegisterAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error)
}
