package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore is an in-process Store bounded by an LRU. Entries evicted by
// capacity or by the backend TTL simply vanish; freshness is still judged at
// read time by the Timed layer.
type MemoryStore struct {
	data *expirable.LRU[Key, []byte]
}

type MemoryConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

const defaultMemorySize = 1024

func NewMemoryStore(cfg MemoryConfig) *MemoryStore {
	size := cfg.Size
	if size == 0 {
		size = defaultMemorySize
	}
	return &MemoryStore{
		data: expirable.NewLRU[Key, []byte](size, nil, cfg.TTL),
	}
}

var _ Store = (*MemoryStore)(nil)

func (m *MemoryStore) Get(_ context.Context, key Key) ([]byte, bool) {
	return m.data.Get(key)
}

func (m *MemoryStore) Set(_ context.Context, key Key, value []byte) {
	m.data.Add(key, value)
}
