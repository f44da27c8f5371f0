package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mydash/dashcache/pkg/dash"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string              `yaml:"addr"`
	Upstream dash.UpstreamConfig `yaml:"upstream"`
	Cache    dash.CacheConfig    `yaml:"cache"`
}

func loadConfig() (*Config, error) {
	var cfg Config

	f, err := os.Open("dashcache.yml")
	if err == nil {
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("error decoding config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error opening config: %w", err)
	} else {
		slog.Info("no config file found, using defaults")
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}

	return &cfg, nil
}

// BuildService assembles the upstream client and its cache. The cache is
// always present; an unconfigured store falls back to in-memory.
func BuildService(cfg *Config) (dash.Service, error) {
	if cfg.Upstream.URL == "" {
		return nil, fmt.Errorf("no upstream configured")
	}

	base, err := dash.UpstreamFromConfig(cfg.Upstream)
	if err != nil {
		return nil, fmt.Errorf("error building upstream: %w", err)
	}

	return dash.CachedFromConfig(base, cfg.Cache)
}
