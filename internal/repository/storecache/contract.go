//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=storecache_test
package storecache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
	"recycling/internal/entities"
	"recycling/pkg/logger"
)

// Source репозиторий, который закрывает кэш.
type Source interface {
	ListStores(ctx context.Context) ([]entities.Store, error)
	GetBranch(ctx context.Context, id int64) (*entities.Branch, error)
}

// Client подмножество redis.Cmdable, которым пользуется кэш.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type repositoryLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
