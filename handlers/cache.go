package handlers

import (
	"context"
	"fmt"
	"time"

	"pawbooker/config"

	"github.com/go-redis/redis/v8"
)

// availabilityVersionKey is a global counter bumped on every write that can
// change availability (hold, confirm, cancel, blackout or rule edits).
// Cached availability responses embed the counter in their key, so a bump
// orphans every stale entry at once; the short TTL reclaims them.
const availabilityVersionKey = "availability:ver"

func availabilityCacheKey(ctx context.Context, cache *redis.Client, serviceID string, from, to time.Time) string {
	version, err := cache.Get(ctx, availabilityVersionKey).Result()
	if err != nil {
		version = "0"
	}
	return fmt.Sprintf("availability:%s:%d:%d:v%s", serviceID, from.Unix(), to.Unix(), version)
}

func invalidateAvailability(ctx context.Context, cache *redis.Client) {
	cache.Incr(ctx, availabilityVersionKey)
}

func availabilityCacheTTL() time.Duration {
	secs := config.AppConfig.AvailabilityCacheTTL
	if secs <= 0 {
		secs = 30
	}
	return time.Duration(secs) * time.Second
}
