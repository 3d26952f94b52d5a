package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/callsentry/callscreen/internal/engine"
	"github.com/callsentry/callscreen/internal/service"
)

// VerdictKeyPrefix namespaces cache entries so the database can be
// shared with other tooling.
const VerdictKeyPrefix = "cs_v:"

type verdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVerdictCache wraps a Redis client as a service.VerdictCache.
func NewVerdictCache(client *redis.Client, ttl time.Duration) service.VerdictCache {
	return &verdictCache{
		client: client,
		ttl:    ttl,
	}
}

// Connect opens a Redis connection and verifies it with a ping.
func Connect(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Connected to Redis")
	return client, nil
}

func key(mode, phoneNumber string) string {
	return VerdictKeyPrefix + mode + ":" + phoneNumber
}

func (c *verdictCache) GetVerdict(ctx context.Context, mode, phoneNumber string) (*engine.Verdict, error) {
	raw, err := c.client.Get(ctx, key(mode, phoneNumber)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis: failed to get verdict: %w", err)
	}

	var v engine.Verdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// A corrupt entry counts as a miss; it will be overwritten.
		return nil, nil
	}
	return &v, nil
}

func (c *verdictCache) SetVerdict(ctx context.Context, mode, phoneNumber string, v engine.Verdict) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redis: failed to marshal verdict: %w", err)
	}

	if err := c.client.Set(ctx, key(mode, phoneNumber), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: failed to set verdict: %w", err)
	}
	return nil
}
