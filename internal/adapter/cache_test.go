package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_GetSetRoundTrip(t *testing.T) {
	cache := newTTLCache(time.Minute)

	cache.set("k", 42)

	value, ok := cache.get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = cache.get("missing")
	assert.False(t, ok)
}

func TestTTLCache_ExpiryOnRead(t *testing.T) {
	cache := newTTLCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.set("k", "v")

	now = now.Add(30 * time.Second)
	_, ok := cache.get("k")
	assert.True(t, ok, "entry within TTL must stay readable")

	now = now.Add(31 * time.Second)
	_, ok = cache.get("k")
	assert.False(t, ok, "entry past TTL must be dropped on read")
	assert.Equal(t, 0, cache.len())
}

func TestTTLCache_PruneExpired(t *testing.T) {
	cache := newTTLCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.set("old-1", 1)
	cache.set("old-2", 2)

	now = now.Add(2 * time.Minute)
	cache.set("fresh", 3)

	assert.Equal(t, 2, cache.pruneExpired())
	assert.Equal(t, 1, cache.len())

	_, ok := cache.get("fresh")
	assert.True(t, ok)
}

func TestTTLCache_SetRefreshesExpiry(t *testing.T) {
	cache := newTTLCache(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.set("k", 1)
	now = now.Add(45 * time.Second)
	cache.set("k", 2)
	now = now.Add(45 * time.Second)

	value, ok := cache.get("k")
	assert.True(t, ok, "rewrite must restart the TTL")
	assert.Equal(t, 2, value)
}
