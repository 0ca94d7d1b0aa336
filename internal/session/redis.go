// internal/session/redis.go
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jobboard-client/internal/common/config"
	commonerrors "jobboard-client/internal/common/errors"
)

// RedisStore keeps the applied-job set in a Redis set under a
// per-session key, so a crashed shell can be inspected and multiple
// shells can share one session when given the same key.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	return NewRedisStoreWithClient(rdb, "session:"+uuid.NewString()+":applied")
}

// NewRedisStoreWithClient allows injecting a prepared client and key.
// Used by tests and by shells resuming a shared session.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Key returns the session's applied-set key.
func (s *RedisStore) Key() string {
	return s.key
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return commonerrors.NewSessionStoreError(err.Error())
	}
	return nil
}

func (s *RedisStore) MarkApplied(ctx context.Context, jobID string) error {
	if err := s.client.SAdd(ctx, s.key, jobID).Err(); err != nil {
		return commonerrors.NewSessionStoreError(err.Error())
	}
	return nil
}

func (s *RedisStore) HasApplied(ctx context.Context, jobID string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, jobID).Result()
	if err != nil {
		return false, commonerrors.NewSessionStoreError(err.Error())
	}
	return ok, nil
}

func (s *RedisStore) Reset(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return commonerrors.NewSessionStoreError(err.Error())
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
