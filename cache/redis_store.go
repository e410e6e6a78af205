package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Truthmedia123/newapp12345/metrics"
)

// RedisStore is the remote counterpart of Store, backed by a Redis
// instance. The application uses it for counters that must survive a
// process restart, such as vendor profile views. Failure semantics match
// Store: errors are logged and converted to neutral values, never
// surfaced to the caller.
type RedisStore struct {
	client  *redis.Client
	metrics *metrics.CacheMetrics
	ctx     context.Context
}

// RedisConfig holds connection settings for the Redis store.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisStore connects to Redis and returns a store, or an error when
// the instance is unreachable.
func NewRedisStore(config *RedisConfig) (*RedisStore, error) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  config.DialTimeout,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	slog.Info("Redis cache connected successfully", "addr", config.Addr)

	return &RedisStore{
		client:  client,
		metrics: metrics.NewCacheMetrics("redis"),
		ctx:     ctx,
	}, nil
}

// Get returns the raw bytes stored under key, or (nil, false) when absent.
func (r *RedisStore) Get(key string, opts *Options) ([]byte, bool) {
	nsKey := namespacedKey(key, opts)

	val, err := r.client.Get(r.ctx, nsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Error("Redis get error", "error", err, "key", nsKey)
		}
		r.metrics.RecordMiss()
		return nil, false
	}

	r.metrics.RecordHit()
	return val, true
}

// Set stores raw bytes under key with the resolved TTL.
func (r *RedisStore) Set(key string, value []byte, opts *Options) {
	if value == nil {
		return
	}

	nsKey := namespacedKey(key, opts)

	if err := r.client.Set(r.ctx, nsKey, value, resolveTTL(opts)).Err(); err != nil {
		slog.Error("Redis set error", "error", err, "key", nsKey)
	}
}

// Delete removes the entry under key.
func (r *RedisStore) Delete(key string, opts *Options) {
	nsKey := namespacedKey(key, opts)

	if err := r.client.Del(r.ctx, nsKey).Err(); err != nil {
		slog.Error("Redis delete error", "error", err, "key", nsKey)
	}
}

// DeletePattern removes every key matching the glob pattern. Redis KEYS
// shares the * semantics of Store.DeletePattern.
func (r *RedisStore) DeletePattern(pattern string, opts *Options) {
	nsPattern := namespacedKey(pattern, opts)

	keys, err := r.client.Keys(r.ctx, nsPattern).Result()
	if err != nil {
		slog.Error("Redis pattern delete error", "error", err, "pattern", nsPattern)
		return
	}
	if len(keys) == 0 {
		return
	}

	if err := r.client.Del(r.ctx, keys...).Err(); err != nil {
		slog.Error("Redis pattern delete error", "error", err, "pattern", nsPattern)
	}
}

// Exists reports whether key is present.
func (r *RedisStore) Exists(key string, opts *Options) bool {
	nsKey := namespacedKey(key, opts)

	n, err := r.client.Exists(r.ctx, nsKey).Result()
	if err != nil {
		slog.Error("Redis exists error", "error", err, "key", nsKey)
		return false
	}
	return n > 0
}

// Increment adds 1 to the integer stored under key and resets its TTL
// window, matching Store.Increment semantics.
func (r *RedisStore) Increment(key string, opts *Options) int64 {
	nsKey := namespacedKey(key, opts)

	n, err := r.client.Incr(r.ctx, nsKey).Result()
	if err != nil {
		slog.Error("Redis increment error", "error", err, "key", nsKey)
		return 0
	}

	if err := r.client.Expire(r.ctx, nsKey, resolveTTL(opts)).Err(); err != nil {
		slog.Error("Redis expire error", "error", err, "key", nsKey)
	}

	return n
}

// Expire updates the expiry of an existing entry. No-op when absent.
func (r *RedisStore) Expire(key string, ttl time.Duration, opts *Options) {
	nsKey := namespacedKey(key, opts)

	if err := r.client.Expire(r.ctx, nsKey, ttl).Err(); err != nil {
		slog.Error("Redis expire error", "error", err, "key", nsKey)
	}
}

// HealthCheck pings the Redis instance.
func (r *RedisStore) HealthCheck() Health {
	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return Health{
			Status:  "unhealthy",
			Details: map[string]interface{}{"error": err.Error()},
		}
	}

	dbSize, _ := r.client.DBSize(r.ctx).Result()

	return Health{
		Status:  "healthy",
		Details: map[string]interface{}{"entries": dbSize},
	}
}

// Close releases the underlying connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func namespacedKey(key string, opts *Options) string {
	prefix := DefaultPrefix
	if opts != nil && opts.Prefix != "" {
		prefix = opts.Prefix
	}
	return prefix + ":" + key
}

func resolveTTL(opts *Options) time.Duration {
	if opts == nil || opts.TTL == 0 {
		return DefaultTTL
	}
	return opts.TTL
}
