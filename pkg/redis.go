package pkg

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the cache configured by REDIS_URL.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}
