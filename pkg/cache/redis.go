package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares cache entries across processes. The optional TTL is
// passed to redis as an upper bound on entry lifetime.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

type RedisConfig struct {
	URL string        `yaml:"url"`
	TTL time.Duration `yaml:"ttl"`
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		ttl:    cfg.TTL,
	}, nil
}

var _ Store = (*RedisStore)(nil)

func (r *RedisStore) Get(ctx context.Context, key Key) ([]byte, bool) {
	b, err := r.client.Get(ctx, string(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("cache.RedisStore.get error", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return b, true
}

func (r *RedisStore) Set(ctx context.Context, key Key, value []byte) {
	if err := r.client.Set(ctx, string(key), value, r.ttl).Err(); err != nil {
		slog.Error("cache.RedisStore.set error", slog.String("error", err.Error()))
	}
}
