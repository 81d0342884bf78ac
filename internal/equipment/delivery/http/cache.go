package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/trafficworks/equipment-service/pkg/logger"
)

// CacheConfig holds cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns default cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      5 * time.Minute,
		CacheableStatus: []int{200, 203, 300, 301, 404},
	}
}

// cachingWriter buffers the response so it can be stored after a miss
type cachingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *cachingWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cachingWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}

// CacheMiddleware serves GET responses from Redis when a fresh copy exists.
// A nil client disables caching.
func CacheMiddleware(redisClient *redis.Client, config CacheConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if redisClient == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := generateCacheKey(r)

		cached, err := redisClient.Get(r.Context(), cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Logger.Debug().
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}

		cw := &cachingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		cw.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(cw, r)

		if !isStatusCacheable(cw.statusCode, config.CacheableStatus) {
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, cw.body.Bytes(), config.DefaultTTL).Err(); err != nil {
			logger.Logger.Warn().
				Err(err).
				Str("cache_key", cacheKey).
				Msg("Failed to cache response")
			return
		}

		logger.Logger.Debug().
			Str("path", r.URL.Path).
			Str("cache_key", cacheKey).
			Dur("ttl", config.DefaultTTL).
			Int("size", cw.body.Len()).
			Msg("Response cached")
	}
}

// generateCacheKey hashes method, path, query, and caller identity
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
		r.Header.Get("Authorization"),
	)

	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

func isStatusCacheable(status int, cacheableStatus []int) bool {
	for _, s := range cacheableStatus {
		if s == status {
			return true
		}
	}
	return false
}

// InvalidateCache removes cached responses matching pattern after a write
func InvalidateCache(redisClient *redis.Client, pattern string) error {
	if redisClient == nil {
		return nil
	}

	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := redisClient.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}
