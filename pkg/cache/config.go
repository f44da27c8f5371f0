package cache

import (
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"time"
)

type Config struct {
	URL  string        `yaml:"url"`
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

func StoreFromConfig(cfg Config) (Store, error) {
	if cfg.URL == "" {
		slog.Warn("no cache store URL specified, using in-memory")
		return NewMemoryStore(MemoryConfig{Size: cfg.Size, TTL: cfg.TTL}), nil
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing cache store URL: %w", err)
	}
	switch u.Scheme {
	case "file":
		p := filepath.Join(u.Hostname(), u.Path)
		slog.Debug("using file cache store", slog.String("path", p))
		return NewFileStore(FileConfig{Path: p, TTL: cfg.TTL}), nil

	case "redis", "rediss":
		slog.Debug("using redis cache store", slog.String("addr", u.Host))
		return NewRedisStore(RedisConfig{URL: cfg.URL, TTL: cfg.TTL})

	default:
		return nil, fmt.Errorf("unsupported cache store scheme %q", u.Scheme)
	}
}
