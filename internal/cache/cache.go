package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/metrics"
	"github.com/infenixDeveloper/artegallera-backend/internal/model"
)

// MessageCache fronts the chat message lists. Every method is fail-open: a
// redis error degrades to a miss (or a no-op for invalidation) and is
// logged, never returned to the caller.
type MessageCache interface {
	Get(ctx context.Context, key string) ([]model.Message, bool)
	Set(ctx context.Context, key string, messages []model.Message)
	// InvalidateEvent removes every cached page of one event's room and
	// nothing else; the general room keeps its entries.
	InvalidateEvent(ctx context.Context, eventID int64)
	InvalidateGeneral(ctx context.Context)
}

// Cached pages go stale fast during a fight; five seconds matches how often
// the frontend polls.
const defaultTTL = 5 * time.Second

func EventKey(eventID int64, limit, offset int) string {
	return fmt.Sprintf("messages:event:%d:limit:%d:offset:%d", eventID, limit, offset)
}

func GeneralKey(limit, offset int) string {
	return fmt.Sprintf("messages:general:limit:%d:offset:%d", limit, offset)
}

type messageCache struct {
	client  *redis.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
	ttl     time.Duration
}

func NewMessageCache(client *redis.Client, logger *zap.Logger, metrics *metrics.Metrics, ttl time.Duration) MessageCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &messageCache{client: client, logger: logger, metrics: metrics, ttl: ttl}
}

func (c *messageCache) Get(ctx context.Context, key string) ([]model.Message, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		if c.metrics != nil {
			c.metrics.RecordCacheMiss()
		}
		return nil, false
	}

	var messages []model.Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		c.logger.Warn("Cache entry corrupt, dropping", zap.String("key", key), zap.Error(err))
		c.client.Del(ctx, key)
		if c.metrics != nil {
			c.metrics.RecordCacheMiss()
		}
		return nil, false
	}

	if c.metrics != nil {
		c.metrics.RecordCacheHit()
	}
	return messages, true
}

func (c *messageCache) Set(ctx context.Context, key string, messages []model.Message) {
	raw, err := json.Marshal(messages)
	if err != nil {
		c.logger.Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *messageCache) InvalidateEvent(ctx context.Context, eventID int64) {
	c.deleteByPattern(ctx, fmt.Sprintf("messages:event:%d:*", eventID))
}

func (c *messageCache) InvalidateGeneral(ctx context.Context) {
	c.deleteByPattern(ctx, "messages:general:*")
}

func (c *messageCache) deleteByPattern(ctx context.Context, pattern string) {
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("Cache scan failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
