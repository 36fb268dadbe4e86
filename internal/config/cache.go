package config

import (
	"os"
	"strconv"
	"time"
)

// CacheConfig defines settings for the ledger read cache.  When Enabled
// is false or no Redis client is configured, caching is disabled and
// every read hits the backing store.  TTL bounds staleness between the
// mutation-driven invalidations.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getenv("CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("CACHE_TTL", "10s")),
	}
}

// Helper functions shared with redis.go and ratelimit.go.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func parseDur(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Second
	}
	return d
}
