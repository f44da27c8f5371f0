package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// HomeTTL is the default freshness threshold for home-dashboard data.
const HomeTTL = 5 * time.Minute

// Timed layers a freshness contract over a Store. Every entry is stored as a
// JSON envelope {"value": ..., "savedAt": <epoch ms>}; a read only returns
// the value while its age is within the caller's threshold. The threshold is
// a read-time parameter, not part of the entry.
//
// Timed never raises: a missing store, an unparseable entry, or a failed
// write all behave as an empty cache.
type Timed struct {
	Store Store
	ns    Namespace

	// Now reports wall-clock time for savedAt stamps and freshness checks.
	// Tests swap it out to simulate clock advance.
	Now func() time.Time
}

func NewTimed(store Store, ns Namespace) *Timed {
	if ns == "" {
		ns = DefaultNamespace
	}
	return &Timed{
		Store: store,
		ns:    ns,
		Now:   time.Now,
	}
}

type envelope struct {
	Value   json.RawMessage `json:"value"`
	SavedAt *float64        `json:"savedAt"`
}

type readOutcome string

const (
	outcomeHit     = readOutcome("hit")
	outcomeAbsent  = readOutcome("absent")
	outcomeStale   = readOutcome("stale")
	outcomeCorrupt = readOutcome("corrupt")
)

var jsonNull = []byte("null")

// Read returns the entry under key if it was written within maxAge.
func (t *Timed) Read(ctx context.Context, key string, maxAge time.Duration) (json.RawMessage, bool) {
	v, outcome := t.read(ctx, key, maxAge)
	readsTotal.WithLabelValues(string(t.ns), string(outcome)).Inc()
	slog.Debug("cache read",
		slog.String("namespace", string(t.ns)),
		slog.String("key", key),
		slog.String("outcome", string(outcome)),
	)
	return v, outcome == outcomeHit
}

func (t *Timed) read(ctx context.Context, key string, maxAge time.Duration) (json.RawMessage, readOutcome) {
	if t.Store == nil {
		return nil, outcomeAbsent
	}

	b, ok := t.Store.Get(ctx, t.ns.Key(key))
	if !ok {
		return nil, outcomeAbsent
	}

	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, outcomeCorrupt
	}
	if e.SavedAt == nil {
		return nil, outcomeCorrupt
	}

	age := t.Now().UnixMilli() - int64(*e.SavedAt)
	if age > maxAge.Milliseconds() {
		return nil, outcomeStale
	}

	// A stored JSON null reads the same as no value at all.
	if len(e.Value) == 0 || bytes.Equal(e.Value, jsonNull) {
		return nil, outcomeAbsent
	}
	return e.Value, outcomeHit
}

// Write stores value under key with the current time. Values that do not
// serialize, and writes the backend rejects, are dropped: the prior entry
// (if any) stays intact.
func (t *Timed) Write(ctx context.Context, key string, value any) {
	if t.Store == nil {
		return
	}

	v, err := json.Marshal(value)
	if err != nil {
		slog.Error("cache write marshal error",
			slog.String("namespace", string(t.ns)),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	savedAt := float64(t.Now().UnixMilli())
	b, err := json.Marshal(envelope{Value: v, SavedAt: &savedAt})
	if err != nil {
		slog.Error("cache write marshal error",
			slog.String("namespace", string(t.ns)),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	t.Store.Set(ctx, t.ns.Key(key), b)
	writesTotal.WithLabelValues(string(t.ns)).Inc()
}

// Get reads a typed value through c. A payload that does not decode into T
// reads as a miss.
func Get[T any](ctx context.Context, c *Timed, key string, maxAge time.Duration) (T, bool) {
	var v T
	raw, ok := c.Read(ctx, key, maxAge)
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		slog.Debug("cache value decode failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		var zero T
		return zero, false
	}
	return v, true
}
