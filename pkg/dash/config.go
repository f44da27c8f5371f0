package dash

import (
	"fmt"
	"net/url"
	"time"

	"github.com/mydash/dashcache/pkg/cache"
)

type UpstreamConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type CacheConfig struct {
	Store  cache.Config  `yaml:"store"`
	MaxAge time.Duration `yaml:"max_age"`
}

func UpstreamFromConfig(cfg UpstreamConfig) (*Upstream, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing upstream URL: %w", err)
	}
	return NewUpstream(*u, cfg.Token), nil
}

func CachedFromConfig(src Service, cfg CacheConfig) (*Cached, error) {
	store, err := cache.StoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("error building cache store: %w", err)
	}
	return NewCached(src, cache.NewTimed(store, cache.DefaultNamespace), cfg.MaxAge), nil
}
