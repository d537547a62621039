package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	k1 := CacheKey("analyze", "resume text", "job title")
	k2 := CacheKey("analyze", "resume text", "job title")
	k3 := CacheKey("analyze", "resume text", "other title")

	require.Equal(t, k1, k2, "identical parts must hash identically")
	require.NotEqual(t, k1, k3)
	require.True(t, strings.HasPrefix(k1, "gm:"))
	require.Len(t, k1, len("gm:")+24)
}

func TestCacheRoundtrip(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "roundtrip")
	_, ok := CacheGet(ctx, key)
	require.False(t, ok, "fresh key must miss")

	CacheSet(ctx, key, []byte("payload"))
	data, ok := CacheGet(ctx, key)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), data)
}

func TestCacheExpiry(t *testing.T) {
	// A negative TTL makes every entry born expired.
	InitCache("", -time.Second, 100, time.Minute)
	ctx := context.Background()

	key := CacheKey("test", "expiry")
	CacheSet(ctx, key, []byte("stale"))
	_, ok := CacheGet(ctx, key)
	require.False(t, ok, "expired entry must not be served")
}

func TestCacheJSON(t *testing.T) {
	InitCache("", time.Minute, 100, time.Minute)
	ctx := context.Background()

	type payload struct {
		Name  string  `json:"name"`
		Score float64 `json:"score"`
	}

	key := CacheKey("test", "json")
	CacheStoreJSON(ctx, key, payload{Name: "python", Score: 66.67})

	got, ok := CacheLoadJSON[payload](ctx, key)
	require.True(t, ok)
	require.Equal(t, payload{Name: "python", Score: 66.67}, got)

	_, ok = CacheLoadJSON[payload](ctx, CacheKey("test", "absent"))
	require.False(t, ok)
}

func TestCacheEviction(t *testing.T) {
	InitCache("", time.Minute, 2, time.Minute)
	ctx := context.Background()

	CacheSet(ctx, CacheKey("evict", "a"), []byte("a"))
	CacheSet(ctx, CacheKey("evict", "b"), []byte("b"))
	CacheSet(ctx, CacheKey("evict", "c"), []byte("c"))

	count := 0
	analysisCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	require.LessOrEqual(t, count, 2, "L1 must stay within max entries")

	// The newest entry survives eviction.
	_, ok := CacheGet(ctx, CacheKey("evict", "c"))
	require.True(t, ok)
}
