// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "research:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestResearchCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResearchCache(client, 1*time.Minute)

	ctx := context.Background()

	// Miss.
	findings, ok := rc.Get(ctx, "seo tools", "English")
	if ok {
		t.Error("expected cache miss")
	}
	if findings != "" {
		t.Error("expected empty findings on miss")
	}

	// Set then hit.
	rc.Set(ctx, "seo tools", "English", "Top queries: how to rank, backlink basics.")
	findings, ok = rc.Get(ctx, "seo tools", "English")
	if !ok {
		t.Error("expected cache hit")
	}
	if findings != "Top queries: how to rank, backlink basics." {
		t.Errorf("findings mismatch: got %q", findings)
	}
}

func TestResearchCacheLanguageSeparation(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResearchCache(client, 1*time.Minute)

	ctx := context.Background()
	rc.Set(ctx, "marketing", "English", "english findings")

	// Same keyword, different language, must miss.
	if _, ok := rc.Get(ctx, "marketing", "Spanish"); ok {
		t.Error("expected miss for different language")
	}
}

func TestResearchCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResearchCache(client, 1*time.Minute)

	ctx := context.Background()
	rc.Set(ctx, "stale keyword", "English", "old findings")

	if _, ok := rc.Get(ctx, "stale keyword", "English"); !ok {
		t.Fatal("expected cache hit before invalidation")
	}

	rc.Invalidate(ctx, "stale keyword", "English")

	if _, ok := rc.Get(ctx, "stale keyword", "English"); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestResearchCacheNilClient(t *testing.T) {
	// A cache with no backing client degrades to a permanent miss.
	rc := NewResearchCache(nil, 0)
	ctx := context.Background()

	rc.Set(ctx, "kw", "English", "findings")
	if _, ok := rc.Get(ctx, "kw", "English"); ok {
		t.Error("expected miss on nil-client cache")
	}
	rc.Invalidate(ctx, "kw", "English")
}

func TestResearchKeyStable(t *testing.T) {
	a := ResearchKey("seo tools", "English")
	b := ResearchKey("seo tools", "English")
	if a != b {
		t.Errorf("key not stable: %q != %q", a, b)
	}
	if a == ResearchKey("seo tools", "Spanish") {
		t.Error("expected different keys for different languages")
	}
	if a == ResearchKey("seo", "English") {
		t.Error("expected different keys for different keywords")
	}
}

func TestNewResearchCacheDefaultTTL(t *testing.T) {
	rc := NewResearchCache(nil, 0)
	if rc.ttl != DefaultResearchTTL {
		t.Errorf("expected DefaultResearchTTL (%v), got %v", DefaultResearchTTL, rc.ttl)
	}
}
