// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// research.go provides a Valkey-backed cache for keyword research findings.
// Research calls hit a search-augmented vendor and are slow and metered, so
// findings for a keyword/language pair are reused across blog generations
// until they expire. All cache errors degrade to a miss; the pipeline never
// fails because Valkey is unavailable.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// researchKeyPrefix is the Valkey key prefix for cached findings.
	researchKeyPrefix = "research:"

	// DefaultResearchTTL is how long research findings stay cached.
	// Search results drift slowly, so a day is a safe window.
	DefaultResearchTTL = 24 * time.Hour
)

// ResearchCache stores per-keyword research findings in Valkey.
type ResearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResearchCache creates a research cache backed by the given Valkey
// client. A nil client yields a cache that always misses.
func NewResearchCache(client *redis.Client, ttl time.Duration) *ResearchCache {
	if ttl == 0 {
		ttl = DefaultResearchTTL
	}
	return &ResearchCache{client: client, ttl: ttl}
}

// Get retrieves cached findings for a keyword/language pair.
func (rc *ResearchCache) Get(ctx context.Context, keyword, language string) (string, bool) {
	if rc == nil || rc.client == nil {
		return "", false
	}
	key := researchKeyPrefix + ResearchKey(keyword, language)
	val, err := rc.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("research cache get error", "keyword", keyword, "error", err)
		return "", false
	}
	slog.Debug("research cache hit", "keyword", keyword)
	return val, true
}

// Set stores findings for a keyword/language pair with the configured TTL.
func (rc *ResearchCache) Set(ctx context.Context, keyword, language, findings string) {
	if rc == nil || rc.client == nil {
		return
	}
	key := researchKeyPrefix + ResearchKey(keyword, language)
	if err := rc.client.Set(ctx, key, findings, rc.ttl).Err(); err != nil {
		slog.Warn("research cache set error", "keyword", keyword, "error", err)
	}
}

// Invalidate removes cached findings for a keyword/language pair.
func (rc *ResearchCache) Invalidate(ctx context.Context, keyword, language string) {
	if rc == nil || rc.client == nil {
		return
	}
	key := researchKeyPrefix + ResearchKey(keyword, language)
	if err := rc.client.Del(ctx, key).Err(); err != nil {
		slog.Warn("research cache invalidate error", "keyword", keyword, "error", err)
	}
}

// ResearchKey derives a stable cache key from a keyword and language.
// Keywords are arbitrary user text, so they are hashed rather than embedded.
func ResearchKey(keyword, language string) string {
	sum := sha256.Sum256([]byte(language + "\x00" + keyword))
	return hex.EncodeToString(sum[:16])
}
