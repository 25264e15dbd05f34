package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch/internal/models"
	"github.com/shenikar/emergency_dispatch/internal/service"
)

const requestCacheKeyPrefix = "emergency:"

// RedisRequestCache - кеш карточек запросов в Redis
type RedisRequestCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisRequestCache(client *redis.Client, ttl time.Duration) service.RequestCache {
	return &RedisRequestCache{
		redisClient: client,
		ttl:         ttl,
	}
}

func requestCacheKey(id uuid.UUID) string {
	return requestCacheKeyPrefix + id.String()
}

// Get пытается получить запрос из Redis. Промах возвращает (nil, nil).
func (c *RedisRequestCache) Get(ctx context.Context, id uuid.UUID) (*models.EmergencyRequest, error) {
	val, err := c.redisClient.Get(ctx, requestCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get emergency request from cache: %w", err)
	}

	req := &models.EmergencyRequest{}
	if err := json.Unmarshal(val, req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emergency request from cache: %w", err)
	}
	return req, nil
}

func (c *RedisRequestCache) Set(ctx context.Context, req *models.EmergencyRequest) error {
	val, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal emergency request for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, requestCacheKey(req.RequestID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set emergency request in cache: %w", err)
	}
	return nil
}

func (c *RedisRequestCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.redisClient.Del(ctx, requestCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate emergency request cache: %w", err)
	}
	return nil
}
