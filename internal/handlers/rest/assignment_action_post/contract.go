//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_action_post_test
package assignment_action_post

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
	Accept(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error)
	StartDelivery(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error)
	Complete(ctx context.Context, assignmentID, agentID int64) (*entities.Assignment, error)
}
