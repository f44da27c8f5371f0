package cache

import (
	"context"
)

// Store is a string-keyed byte-valued persistent store. Implementations are
// best-effort: a backend failure on Get reads as a miss, a backend failure on
// Set drops the write. Neither surfaces an error to the caller.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, bool)
	Set(ctx context.Context, key Key, value []byte)
}
