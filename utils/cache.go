package utils

import (
	"context"
	"log"
	"time"

	"schedly/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces the per-user token hashes in the auth cache.
const AuthCachePrefix = "authToken:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// CacheAuthTokenHash stores the hash of a freshly minted token so the auth
// middleware can verify it has not been revoked.
func CacheAuthTokenHash(userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	return GetAuthCacheClient().Set(ctx, AuthCachePrefix+userID, tokenHash, ttl).Err()
}

// GetAuthTokenHash returns the cached token hash for a user, or redis.Nil.
func GetAuthTokenHash(userID string) (string, error) {
	ctx := context.Background()
	return GetAuthCacheClient().Get(ctx, AuthCachePrefix+userID).Result()
}

// RevokeAuthToken drops the cached token hash, invalidating the session.
func RevokeAuthToken(userID string) error {
	ctx := context.Background()
	return GetAuthCacheClient().Del(ctx, AuthCachePrefix+userID).Err()
}
