package database

import (
	"context"
	"log"

	"github.com/corebank/backend/internal/config"
	"github.com/go-redis/redis/v8"
)

// InitRedis returns a connected client, or nil when Redis is unreachable.
// Callers treat a nil client as "throttling disabled".
func InitRedis(ctx context.Context, cfg config.RedisConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Connection failed, continuing without Redis: %v", err)
		rdb.Close()
		return nil
	}

	log.Println("[REDIS] Connection established")
	return rdb
}
