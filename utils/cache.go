// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"handyhub/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient is the dedicated client for durable session records.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for session records (using DB from AppConfig).
func InitSessionCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Session): %w", err)
	}
	SessionCacheClient = client
	return nil
}

// GetSessionCacheClient returns the Redis client for session records, or nil when it is not initialised.
func GetSessionCacheClient() *redis.Client {
	return SessionCacheClient
}
