package server_test

import (
	"strings"
	"testing"

	"github.com/mydash/dashcache/pkg/cache"
	"github.com/mydash/dashcache/pkg/dash"
	"github.com/mydash/dashcache/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig(t *testing.T) {
	t.Parallel()
	var cfg server.Config
	err := yaml.NewDecoder(strings.NewReader(`---
addr: ":9090"
upstream:
  url: https://api.mydash.example
  token: s3cret
cache:
  store:
    url: file://./tmp/dashcache
  max_age: 10m
`)).Decode(&cfg)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)

	svc, err := server.BuildService(&cfg)
	require.NoError(t, err)

	cached, ok := svc.(*dash.Cached)
	require.True(t, ok)
	store, ok := cached.Cache.Store.(*cache.FileStore)
	require.True(t, ok)
	assert.Equal(t, "tmp/dashcache", store.Path)

	upstream, ok := cached.Source.(*dash.Upstream)
	require.True(t, ok)
	assert.Equal(t, "https://api.mydash.example", upstream.URL.String())
}

func TestConfig_NoUpstream(t *testing.T) {
	t.Parallel()

	_, err := server.BuildService(&server.Config{})
	assert.ErrorContains(t, err, "no upstream configured")
}
