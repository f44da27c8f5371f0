package dash

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mydash/dashcache/pkg/cache"
)

// Cached wraps a Service with a timed cache. Reads within the freshness
// threshold never touch the upstream; everything else falls through and the
// response is written back best-effort.
type Cached struct {
	Source Service
	Cache  *cache.Timed

	maxAge time.Duration
}

var _ Service = (*Cached)(nil)

const (
	keyProfile    = "profile"
	keyAttributes = "attributes"
	keyWorkouts   = "workouts"
	keyTasks      = "tasks"
	keyHabits     = "habits"
)

func NewCached(src Service, timed *cache.Timed, maxAge time.Duration) *Cached {
	if maxAge <= 0 {
		maxAge = cache.HomeTTL
	}
	return &Cached{
		Source: src,
		Cache:  timed,
		maxAge: maxAge,
	}
}

func (c *Cached) Profile(ctx context.Context) (*Profile, error) {
	v, ok := cache.Get[Profile](ctx, c.Cache, keyProfile, c.maxAge)
	c.logRead(ctx, "Profile", ok)
	if ok {
		return &v, nil
	}

	p, err := c.Source.Profile(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Write(ctx, keyProfile, p)
	return p, nil
}

func (c *Cached) Attributes(ctx context.Context) ([]Attribute, error) {
	v, ok := cache.Get[[]Attribute](ctx, c.Cache, keyAttributes, c.maxAge)
	c.logRead(ctx, "Attributes", ok)
	if ok {
		return v, nil
	}

	attrs, err := c.Source.Attributes(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Write(ctx, keyAttributes, attrs)
	return attrs, nil
}

func (c *Cached) Workouts(ctx context.Context) ([]Workout, error) {
	v, ok := cache.Get[[]Workout](ctx, c.Cache, keyWorkouts, c.maxAge)
	c.logRead(ctx, "Workouts", ok)
	if ok {
		return v, nil
	}

	workouts, err := c.Source.Workouts(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Write(ctx, keyWorkouts, workouts)
	return workouts, nil
}

func (c *Cached) Tasks(ctx context.Context) ([]Task, error) {
	v, ok := cache.Get[[]Task](ctx, c.Cache, keyTasks, c.maxAge)
	c.logRead(ctx, "Tasks", ok)
	if ok {
		return v, nil
	}

	tasks, err := c.Source.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Write(ctx, keyTasks, tasks)
	return tasks, nil
}

func (c *Cached) Habits(ctx context.Context) ([]Habit, error) {
	v, ok := cache.Get[[]Habit](ctx, c.Cache, keyHabits, c.maxAge)
	c.logRead(ctx, "Habits", ok)
	if ok {
		return v, nil
	}

	habits, err := c.Source.Habits(ctx)
	if err != nil {
		return nil, err
	}
	c.Cache.Write(ctx, keyHabits, habits)
	return habits, nil
}

func (c *Cached) logRead(ctx context.Context, op string, hit bool) {
	slog.Debug("cached "+op,
		slog.String("request_id", middleware.GetReqID(ctx)),
		slog.Bool("cache_hit", hit),
	)
}
