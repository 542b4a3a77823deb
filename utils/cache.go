// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"darimaids/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient holds wizard drafts.
	SessionClient *redis.Client
	// CacheClient is the generic cache client (service catalog).
	CacheClient *redis.Client
)

func newRedisClient(db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (db %d): %w", db, err)
	}
	return client, nil
}

// InitRedis connects both Redis clients.
func InitRedis() error {
	var err error
	if SessionClient, err = newRedisClient(config.AppConfig.RedisSessionDB); err != nil {
		return err
	}
	if CacheClient, err = newRedisClient(config.AppConfig.RedisCacheDB); err != nil {
		return err
	}
	return nil
}

// RedisClients returns the connected clients, for health checks.
func RedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{SessionClient, CacheClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}

// CloseRedis closes any connected client.
func CloseRedis() {
	for _, c := range RedisClients() {
		_ = c.Close()
	}
}
