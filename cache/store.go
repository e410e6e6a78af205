// Package cache implements the process-local key/value store used by the
// application layer in place of a remote cache.
package cache

import (
	"log/slog"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Truthmedia123/newapp12345/metrics"
)

// DefaultPrefix is the namespace applied when an operation specifies none.
const DefaultPrefix = "app"

// DefaultTTL is applied when an operation specifies no TTL.
const DefaultTTL = 300 * time.Second

// Options configures a single cache operation.
type Options struct {
	TTL      time.Duration
	Prefix   string
	Compress bool // reserved for future use, currently ignored
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Store is an in-memory key/value store with per-entry expiry, prefix
// namespacing, pattern-based bulk deletion and hit/miss statistics.
// Expired entries are evicted lazily on read; a background sweep bounds
// memory growth from entries that are never read again.
type Store struct {
	mu         sync.RWMutex
	data       map[string]entry
	defaultTTL time.Duration
	stats      statsTracker
	metrics    *metrics.CacheMetrics
	ticker     *time.Ticker
	stopCh     chan struct{}
	stopOnce   sync.Once
	now        func() time.Time
}

// NewStore creates a store and starts its housekeeping sweep. A
// sweepInterval <= 0 disables the sweep; lazy eviction on read still
// guarantees expired entries are never returned.
func NewStore(defaultTTL, sweepInterval time.Duration) *Store {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	s := &Store{
		data:       make(map[string]entry),
		defaultTTL: defaultTTL,
		metrics:    metrics.NewCacheMetrics("memory"),
		stopCh:     make(chan struct{}),
		now:        time.Now,
	}

	if sweepInterval > 0 {
		s.ticker = time.NewTicker(sweepInterval)
		go s.sweep()
	}

	return s
}

// Stop cancels the housekeeping sweep. Safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// Get returns the value stored under key, or (nil, false) when the key is
// absent or expired. Expired entries are evicted on the spot.
func (s *Store) Get(key string, opts *Options) (value interface{}, found bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache get failed", "key", key, "panic", r)
			value, found = nil, false
		}
	}()

	start := time.Now()
	nsKey := namespacedKey(key, opts)

	s.mu.Lock()
	e, ok := s.data[nsKey]
	if ok && s.expired(e) {
		delete(s.data, nsKey)
		ok = false
	}
	if ok {
		value, found = e.value, true
	}
	s.stats.record(found, time.Since(start))
	s.mu.Unlock()

	if found {
		s.metrics.RecordHit()
	} else {
		s.metrics.RecordMiss()
	}
	s.metrics.RecordLatency("get", time.Since(start).Seconds())

	return value, found
}

// Set stores value under key, overwriting any existing entry. A zero TTL in
// opts falls back to the store default; a negative TTL stores the entry
// already expired.
func (s *Store) Set(key string, value interface{}, opts *Options) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache set failed", "key", key, "panic", r)
		}
	}()

	start := time.Now()
	nsKey := namespacedKey(key, opts)
	ttl := s.resolveTTL(opts)

	s.mu.Lock()
	s.data[nsKey] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	size := len(s.data)
	s.mu.Unlock()

	s.metrics.RecordLatency("set", time.Since(start).Seconds())
	s.metrics.SetEntries(size)
}

// Delete removes the entry under key. No-op when the key is absent.
func (s *Store) Delete(key string, opts *Options) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache delete failed", "key", key, "panic", r)
		}
	}()

	nsKey := namespacedKey(key, opts)

	s.mu.Lock()
	delete(s.data, nsKey)
	size := len(s.data)
	s.mu.Unlock()

	s.metrics.SetEntries(size)
}

// DeletePattern removes every entry whose namespaced key matches pattern,
// where * matches zero or more characters and all other characters match
// literally. Matching is a full scan; the entry count here is small.
func (s *Store) DeletePattern(pattern string, opts *Options) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache pattern delete failed", "pattern", pattern, "panic", r)
		}
	}()

	nsPattern := namespacedKey(pattern, opts)
	re, err := compilePattern(nsPattern)
	if err != nil {
		slog.Error("cache pattern delete failed", "pattern", pattern, "error", err)
		return
	}

	s.mu.Lock()
	for key := range s.data {
		if re.MatchString(key) {
			delete(s.data, key)
		}
	}
	size := len(s.data)
	s.mu.Unlock()

	s.metrics.SetEntries(size)
}

// Exists reports whether key holds a live entry. Expired entries are evicted
// and reported absent. Does not affect hit/miss statistics.
func (s *Store) Exists(key string, opts *Options) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache exists failed", "key", key, "panic", r)
			found = false
		}
	}()

	nsKey := namespacedKey(key, opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[nsKey]
	if !ok {
		return false
	}
	if s.expired(e) {
		delete(s.data, nsKey)
		return false
	}
	return true
}

// Increment adds 1 to the integer stored under key, treating absent,
// expired or non-numeric values as 0, and returns the new value. Every
// call stores the result with a fresh TTL window; callers that need a
// fixed-origin expiry must follow up with Expire.
func (s *Store) Increment(key string, opts *Options) (n int64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache increment failed", "key", key, "panic", r)
			n = 0
		}
	}()

	nsKey := namespacedKey(key, opts)
	ttl := s.resolveTTL(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	var current int64
	if e, ok := s.data[nsKey]; ok && !s.expired(e) {
		current = asInt64(e.value)
	}

	n = current + 1
	s.data[nsKey] = entry{
		value:     n,
		expiresAt: s.now().Add(ttl),
	}
	return n
}

// Expire updates the expiry of an existing entry without touching its
// value. No-op when the key is absent or already expired.
func (s *Store) Expire(key string, ttl time.Duration, opts *Options) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("cache expire failed", "key", key, "panic", r)
		}
	}()

	nsKey := namespacedKey(key, opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[nsKey]
	if !ok || s.expired(e) {
		return
	}

	e.expiresAt = s.now().Add(ttl)
	s.data[nsKey] = e
}

// Stats returns a snapshot of hit/miss statistics.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats.snapshot()
}

// HealthCheck reports the store's operational status. The store has no
// external dependency to fail, so a constructed store is always healthy;
// details carry the entry count and process memory figures.
func (s *Store) HealthCheck() Health {
	s.mu.RLock()
	entries := len(s.data)
	s.mu.RUnlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return Health{
		Status: "healthy",
		Details: map[string]interface{}{
			"entries":        entries,
			"alloc_bytes":    mem.Alloc,
			"sys_bytes":      mem.Sys,
			"num_gc":         mem.NumGC,
			"num_goroutines": runtime.NumGoroutine(),
		},
	}
}

// Len returns the number of stored entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

func (s *Store) resolveTTL(opts *Options) time.Duration {
	if opts == nil || opts.TTL == 0 {
		return s.defaultTTL
	}
	return opts.TTL
}

func (s *Store) expired(e entry) bool {
	return s.now().After(e.expiresAt)
}

func (s *Store) sweep() {
	for {
		select {
		case <-s.ticker.C:
			s.removeExpiredEntries()
		case <-s.stopCh:
			s.ticker.Stop()
			return
		}
	}
}

func (s *Store) removeExpiredEntries() {
	s.mu.Lock()
	for key, e := range s.data {
		if s.expired(e) {
			delete(s.data, key)
		}
	}
	size := len(s.data)
	s.mu.Unlock()

	s.metrics.SetEntries(size)
}

// compilePattern translates a glob-like pattern into an anchored regular
// expression. All regex metacharacters in the literal portions are escaped
// before * is substituted, so a literal . or + in a prefix never matches
// extra characters.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return regexp.Compile("^" + strings.Join(parts, ".*") + "$")
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}
