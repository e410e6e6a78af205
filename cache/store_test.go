package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestStore returns a store with no sweep and a controllable clock.
// Advancing the returned time pointer moves the store's notion of now.
func newTestStore() (*Store, *time.Time) {
	store := NewStore(0, 0)
	current := time.Now()
	store.now = func() time.Time { return current }
	return store, &current
}

func TestStoreGetSet(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()

	t.Run("Get before Set returns not found", func(t *testing.T) {
		value, found := store.Get("missing", nil)
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("Set then Get returns value", func(t *testing.T) {
		store.Set("greeting", "hello", nil)

		value, found := store.Get("greeting", nil)
		assert.True(t, found)
		assert.Equal(t, "hello", value)
	})

	t.Run("Set overwrites existing value", func(t *testing.T) {
		store.Set("greeting", "hello", nil)
		store.Set("greeting", "goodbye", nil)

		value, found := store.Get("greeting", nil)
		assert.True(t, found)
		assert.Equal(t, "goodbye", value)
	})

	t.Run("Prefixes partition keys", func(t *testing.T) {
		store.Set("shared", 1, &Options{Prefix: "vendors"})
		store.Set("shared", 2, &Options{Prefix: "search"})

		value, found := store.Get("shared", &Options{Prefix: "vendors"})
		assert.True(t, found)
		assert.Equal(t, 1, value)

		value, found = store.Get("shared", &Options{Prefix: "search"})
		assert.True(t, found)
		assert.Equal(t, 2, value)
	})
}

func TestStoreExpiry(t *testing.T) {
	t.Run("Expired entry is not returned and is evicted", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Set("temp", "value", &Options{TTL: 10 * time.Second})

		value, found := store.Get("temp", nil)
		assert.True(t, found)
		assert.Equal(t, "value", value)

		*clock = clock.Add(11 * time.Second)

		value, found = store.Get("temp", nil)
		assert.False(t, found)
		assert.Nil(t, value)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Exists is false after expiry without a prior Get", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Set("temp", "value", &Options{TTL: 10 * time.Second})
		assert.True(t, store.Exists("temp", nil))

		*clock = clock.Add(11 * time.Second)

		assert.False(t, store.Exists("temp", nil))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Default TTL applies when unspecified", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Set("temp", "value", nil)

		*clock = clock.Add(299 * time.Second)
		_, found := store.Get("temp", nil)
		assert.True(t, found)

		*clock = clock.Add(2 * time.Second)
		_, found = store.Get("temp", nil)
		assert.False(t, found)
	})

	t.Run("Negative TTL stores entry already expired", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("temp", "value", &Options{TTL: -1 * time.Second})

		_, found := store.Get("temp", nil)
		assert.False(t, found)
	})
}

func TestStoreDelete(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()

	t.Run("Delete removes entry", func(t *testing.T) {
		store.Set("doomed", "value", nil)
		store.Delete("doomed", nil)

		_, found := store.Get("doomed", nil)
		assert.False(t, found)
	})

	t.Run("Delete absent key is a no-op", func(t *testing.T) {
		store.Delete("never-set", nil)
	})
}

func TestStoreDeletePattern(t *testing.T) {
	t.Run("Wildcard removes matching namespace only", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("1", "a", &Options{Prefix: "vendors"})
		store.Set("list", "b", &Options{Prefix: "vendors"})
		store.Set("abc", "c", &Options{Prefix: "search"})

		store.DeletePattern("*", &Options{Prefix: "vendors"})

		_, found := store.Get("1", &Options{Prefix: "vendors"})
		assert.False(t, found)
		_, found = store.Get("list", &Options{Prefix: "vendors"})
		assert.False(t, found)

		value, found := store.Get("abc", &Options{Prefix: "search"})
		assert.True(t, found)
		assert.Equal(t, "c", value)
	})

	t.Run("Wildcard inside key", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("list:cat=photo", "a", &Options{Prefix: "vendors"})
		store.Set("list:cat=venue", "b", &Options{Prefix: "vendors"})
		store.Set("id:7", "c", &Options{Prefix: "vendors"})

		store.DeletePattern("list:*", &Options{Prefix: "vendors"})

		_, found := store.Get("list:cat=photo", &Options{Prefix: "vendors"})
		assert.False(t, found)
		_, found = store.Get("list:cat=venue", &Options{Prefix: "vendors"})
		assert.False(t, found)
		_, found = store.Get("id:7", &Options{Prefix: "vendors"})
		assert.True(t, found)
	})

	t.Run("Literal dot in prefix does not match extra characters", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("a", "dot", &Options{Prefix: "img.v1"})
		store.Set("a", "other", &Options{Prefix: "imgxv1"})

		store.DeletePattern("*", &Options{Prefix: "img.v1"})

		_, found := store.Get("a", &Options{Prefix: "img.v1"})
		assert.False(t, found)
		value, found := store.Get("a", &Options{Prefix: "imgxv1"})
		assert.True(t, found)
		assert.Equal(t, "other", value)
	})

	t.Run("Literal plus in pattern matches literally", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("a+b", "plus", nil)
		store.Set("aab", "other", nil)

		store.DeletePattern("a+b", nil)

		_, found := store.Get("a+b", nil)
		assert.False(t, found)
		_, found = store.Get("aab", nil)
		assert.True(t, found)
	})

	t.Run("Pattern with regex metacharacters does not panic", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("safe", "value", nil)
		store.DeletePattern("a[b(c*", nil)

		_, found := store.Get("safe", nil)
		assert.True(t, found)
	})
}

func TestStoreIncrement(t *testing.T) {
	t.Run("Counts from zero", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		assert.Equal(t, int64(1), store.Increment("counter", nil))
		assert.Equal(t, int64(2), store.Increment("counter", nil))
		assert.Equal(t, int64(3), store.Increment("counter", nil))
	})

	t.Run("Expired counter restarts from zero", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Increment("counter", &Options{TTL: 10 * time.Second})
		*clock = clock.Add(11 * time.Second)

		assert.Equal(t, int64(1), store.Increment("counter", &Options{TTL: 10 * time.Second}))
	})

	t.Run("Each increment resets the TTL window", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Increment("counter", &Options{TTL: 10 * time.Second})
		*clock = clock.Add(8 * time.Second)
		assert.Equal(t, int64(2), store.Increment("counter", &Options{TTL: 10 * time.Second}))

		// Past the first window but within the refreshed one.
		*clock = clock.Add(8 * time.Second)
		assert.Equal(t, int64(3), store.Increment("counter", &Options{TTL: 10 * time.Second}))
	})

	t.Run("Non-numeric value treated as zero", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Set("counter", "not a number", nil)
		assert.Equal(t, int64(1), store.Increment("counter", nil))
	})
}

func TestStoreExpire(t *testing.T) {
	t.Run("Extends the expiry of a live entry", func(t *testing.T) {
		store, clock := newTestStore()
		defer store.Stop()

		store.Set("temp", "value", &Options{TTL: 10 * time.Second})
		store.Expire("temp", 60*time.Second, nil)

		*clock = clock.Add(30 * time.Second)
		_, found := store.Get("temp", nil)
		assert.True(t, found)

		*clock = clock.Add(31 * time.Second)
		_, found = store.Get("temp", nil)
		assert.False(t, found)
	})

	t.Run("No-op when key is absent", func(t *testing.T) {
		store, _ := newTestStore()
		defer store.Stop()

		store.Expire("never-set", 60*time.Second, nil)
		_, found := store.Get("never-set", nil)
		assert.False(t, found)
	})
}

func TestStoreStats(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()

	store.Set("present", "value", nil)

	for i := 0; i < 3; i++ {
		store.Get("present", nil)
	}
	for i := 0; i < 2; i++ {
		store.Get("absent", nil)
	}

	stats := store.Stats()
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, int64(5), stats.TotalRequests)
	assert.InDelta(t, 0.6, stats.HitRate, 0.0001)
}

func TestStoreHealthCheck(t *testing.T) {
	store, _ := newTestStore()
	defer store.Stop()

	store.Set("a", 1, nil)
	store.Set("b", 2, nil)

	health := store.HealthCheck()
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 2, health.Details["entries"])
	assert.Contains(t, health.Details, "alloc_bytes")
	assert.Contains(t, health.Details, "sys_bytes")
}

func TestStoreSweep(t *testing.T) {
	store, clock := newTestStore()
	defer store.Stop()

	store.Set("short", "a", &Options{TTL: 10 * time.Second})
	store.Set("long", "b", &Options{TTL: 100 * time.Second})
	assert.Equal(t, 2, store.Len())

	*clock = clock.Add(11 * time.Second)
	store.removeExpiredEntries()

	assert.Equal(t, 1, store.Len())
	_, found := store.Get("long", nil)
	assert.True(t, found)
}

func TestStoreStop(t *testing.T) {
	store := NewStore(DefaultTTL, 50*time.Millisecond)

	store.Set("a", 1, nil)
	store.Stop()
	// Stop must be idempotent.
	store.Stop()

	_, found := store.Get("a", nil)
	assert.True(t, found)
}
