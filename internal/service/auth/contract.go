//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"recycling/internal/entities"
)

type UserRepository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

type AgentRepository interface {
	Create(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error)
	GetByID(ctx context.Context, id int64) (*entities.Agent, error)
	GetByEmail(ctx context.Context, email string) (*entities.Agent, error)
	Update(ctx context.Context, agentModify entities.AgentModify) (*entities.Agent, error)
}

type TokenIssuer interface {
	Issue(subject int64, role, email string) (string, time.Time, error)
}
