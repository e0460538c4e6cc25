package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// CacheService stores JSON encoded read models. A miss is reported as
// (false, nil); errors are never fatal to the caller.
type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// EntityCacheKey returns the key of one cached entity, e.g. "patient:12".
func EntityCacheKey(entityName string, id int64) string {
	return fmt.Sprintf("%s:%d", entityName, id)
}

type redisCacheService struct {
	client *redis.Client
	ttl    time.Duration
	log    *logrus.Logger
}

func NewRedisCacheService(client *redis.Client, ttl time.Duration, log *logrus.Logger) CacheService {
	return &redisCacheService{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (s *redisCacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// Drop entries written by an older shape of the read model.
		s.log.Warnf("Failed to decode cache entry %s: %+v", key, err)
		_ = s.client.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (s *redisCacheService) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *redisCacheService) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

type noopCacheService struct{}

// NewNoopCacheService is used when Redis is disabled.
func NewNoopCacheService() CacheService {
	return noopCacheService{}
}

func (noopCacheService) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopCacheService) Set(context.Context, string, interface{}) error         { return nil }
func (noopCacheService) Delete(context.Context, ...string) error                { return nil }
