package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fraudlens/console/internal/config"
	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
	"github.com/fraudlens/console/pkg/errors"
	"github.com/fraudlens/console/pkg/logger"
)

const redisKeyPrefix = "fraudlens:session:"

// redisStore keeps sessions in Redis so any console instance can serve any
// browser.
type redisStore struct {
	client  *redis.Client
	maxTTL  time.Duration
	log     logger.Logger
	metrics *monitoring.Metrics
}

// NewRedisStore connects to Redis and verifies the connection before
// returning the store.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, maxTTL time.Duration, log logger.Logger, metrics *monitoring.Metrics) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &redisStore{client: client, maxTTL: maxTTL, log: log, metrics: metrics}, nil
}

func (r *redisStore) Create(ctx context.Context, token string, user models.SessionUser) (*Session, error) {
	s := newSession(token, user, r.maxTTL)
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.ErrInternal.WithError(err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+s.ID, raw, time.Until(s.ExpiresAt)).Err(); err != nil {
		r.log.Error(ctx, "failed to persist session", err, logger.Fields{"user_id": user.UserID})
		return nil, errors.ErrInternal.WithError(err)
	}
	r.metrics.SessionOpened()
	return s, nil
}

func (r *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, errSessionGone
	}
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, errSessionGone
	}
	if err != nil {
		r.log.Error(ctx, "session store read failed", err)
		return nil, errors.ErrInternal.WithError(err)
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errors.ErrInternal.WithError(err)
	}
	return &s, nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		r.log.Error(ctx, "session store delete failed", err)
		return errors.ErrInternal.WithError(err)
	}
	if deleted > 0 {
		r.metrics.SessionClosed()
	}
	return nil
}
