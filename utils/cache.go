package utils

import (
	"context"
	"time"

	"serenemind/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// CacheClient memoizes recommendation results and other short-lived data.
	CacheClient *redis.Client
	// AuthCacheClient holds revocation markers and session lookups.
	AuthCacheClient *redis.Client
)

// newRedisClient connects to the configured Redis instance on the given
// logical DB and fails hard when it cannot be reached at startup.
func newRedisClient(db int, purpose string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Fatal("failed to connect to Redis",
			zap.String("purpose", purpose), zap.Int("db", db), zap.Error(err))
	}
	return client
}

// InitRedis initializes all Redis clients used by the app.
func InitRedis() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "cache")
	}
	return CacheClient
}

// GetAuthCacheClient returns the auth cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "auth")
	}
	return AuthCacheClient
}
