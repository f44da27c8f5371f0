package cache

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps one file per key under a root directory. A TTL of zero
// keeps entries forever; a positive TTL hides files older than their mtime
// allows, standing in for storage eviction.
type FileStore struct {
	Path string
	ttl  time.Duration
}

type FileConfig struct {
	Path string        `yaml:"path"`
	TTL  time.Duration `yaml:"ttl"`
}

func NewFileStore(cfg FileConfig) *FileStore {
	return &FileStore{
		Path: cfg.Path,
		ttl:  cfg.TTL,
	}
}

var _ Store = (*FileStore)(nil)

func (f *FileStore) Get(_ context.Context, key Key) ([]byte, bool) {
	p := filepath.Join(f.Path, string(key))

	if f.ttl > 0 {
		stat, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false
		} else if err == nil && time.Since(stat.ModTime()) > f.ttl {
			return nil, false
		}
	}

	b, err := os.ReadFile(p)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Error("cache.FileStore.get error", slog.String("error", err.Error()))
		}
		return nil, false
	}
	return b, true
}

func (f *FileStore) Set(_ context.Context, key Key, value []byte) {
	p := filepath.Join(f.Path, string(key))
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		slog.Error("cache.FileStore.set mkdir error", slog.String("error", err.Error()))
		return
	}

	if err := os.WriteFile(p, value, 0644); err != nil {
		slog.Error("cache.FileStore.set write error", slog.String("error", err.Error()))
	}
}
