// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"glowdesk/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

const availabilityTTL = 5 * time.Minute

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

func availabilityKey(serviceID, date string, units, travelMin int) string {
	return fmt.Sprintf("availability:%s:%s:%d:%d", serviceID, date, units, travelMin)
}

// CachedAvailability loads a cached availability result. ok is false on a
// miss, an unreadable entry, or when caching is disabled (no client
// initialized).
func CachedAvailability(ctx context.Context, serviceID, date string, units, travelMin int, out any) bool {
	if CacheClient == nil {
		return false
	}
	raw, err := CacheClient.Get(ctx, availabilityKey(serviceID, date, units, travelMin)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// StoreAvailability caches an availability result. Failures are logged and
// ignored; the cache is an optimization, not a source of truth.
func StoreAvailability(ctx context.Context, serviceID, date string, units, travelMin int, val any) {
	if CacheClient == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := CacheClient.Set(ctx, availabilityKey(serviceID, date, units, travelMin), raw, availabilityTTL).Err(); err != nil {
		GetLogger().Warn("availability cache store failed", zap.Error(err))
	}
}

// InvalidateAvailability drops every cached result for a date. Called after
// a booking is created or cancelled on that date.
func InvalidateAvailability(ctx context.Context, dates ...string) {
	if CacheClient == nil {
		return
	}
	client := CacheClient
	for _, date := range dates {
		iter := client.Scan(ctx, 0, fmt.Sprintf("availability:*:%s:*", date), 0).Iterator()
		for iter.Next(ctx) {
			if err := client.Del(ctx, iter.Val()).Err(); err != nil {
				GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
			}
		}
	}
}
