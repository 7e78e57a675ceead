package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"

	"cruisedesk/shared/cache"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyPrefix       = "cruisedesk"
	cacheKeySeparator    = ":"
	anonymousFingerprint = "anonymous"
	fingerprintLength    = 16
	generationNamespace  = "generation"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the parts under the application prefix, skipping empty parts.
func BuildCacheKey(parts ...string) string {
	key := []string{cacheKeyPrefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// CachePattern matches every key BuildCacheKey produces for entity.
func CachePattern(entity string) string {
	return BuildCacheKey(entity) + cacheKeySeparator + "*"
}

// SessionFingerprint partitions cached reads per session without storing the token itself.
func SessionFingerprint(token string) string {
	if token == "" {
		return anonymousFingerprint
	}

	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])[:fingerprintLength]
}

// GenerationKey holds the counter that versions every cached read of entity. It lives outside
// CachePattern(entity) so clearing the entity never resets it.
func GenerationKey(entity string) string {
	return BuildCacheKey(generationNamespace, entity)
}

// InvalidateCaches bumps the generation of the given entities, which retires every cached read
// made under the old one, then clears those reads. Failures are logged, not returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, entities ...string) {
	if redisCache == nil {
		return
	}

	for _, entity := range entities {
		if _, err := redisCache.Increment(ctx, GenerationKey(entity), 0); err != nil {
			log.Error().Err(err).Str("entity", entity).Msg("failed to bump cache generation")
		}

		if err := redisCache.Clear(ctx, CachePattern(entity)); err != nil {
			log.Error().Err(err).Str("entity", entity).Msg("failed to invalidate cache")
		}
	}
}
