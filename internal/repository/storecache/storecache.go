package storecache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"recycling/internal/entities"
	"recycling/pkg/logger"
)

const (
	storesKey    = "recycling:stores:v1"
	branchPrefix = "recycling:branch:v1:"
)

// Repository read-through кэш справочника магазинов поверх Postgres.
// Ошибки Redis не ломают чтение: запрос уходит в источник.
type Repository struct {
	log    repositoryLogger
	source Source
	client Client
	ttl    time.Duration
}

func New(log repositoryLogger, source Source, client Client, ttl time.Duration) *Repository {
	return &Repository{
		log:    log.With(logger.NewField("repository", "storecache")),
		source: source,
		client: client,
		ttl:    ttl,
	}
}

func (r *Repository) ListStores(ctx context.Context) ([]entities.Store, error) {
	var stores []entities.Store
	if r.load(ctx, storesKey, &stores) {
		return stores, nil
	}

	stores, err := r.source.ListStores(ctx)
	if err != nil {
		return nil, err
	}

	r.store(ctx, storesKey, stores)
	return stores, nil
}

func (r *Repository) GetBranch(ctx context.Context, id int64) (*entities.Branch, error) {
	key := branchPrefix + strconv.FormatInt(id, 10)

	var branch entities.Branch
	if r.load(ctx, key, &branch) {
		return &branch, nil
	}

	found, err := r.source.GetBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, found)
	return found, nil
}

func (r *Repository) load(ctx context.Context, key string, dst any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn("cache read failed", logger.NewField("key", key), logger.NewField("error", err))
		}
		CacheRequestsTotal.WithLabelValues("miss").Inc()
		return false
	}

	err = json.Unmarshal(raw, dst)
	if err != nil {
		r.log.Warn("cache entry corrupted", logger.NewField("key", key), logger.NewField("error", err))
		CacheRequestsTotal.WithLabelValues("miss").Inc()
		return false
	}

	CacheRequestsTotal.WithLabelValues("hit").Inc()
	return true
}

func (r *Repository) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		r.log.Warn("cache encode failed", logger.NewField("key", key), logger.NewField("error", err))
		return
	}

	err = r.client.Set(ctx, key, raw, r.ttl).Err()
	if err != nil {
		r.log.Warn("cache write failed", logger.NewField("key", key), logger.NewField("error", err))
	}
}
