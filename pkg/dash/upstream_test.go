package dash_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/mydash/dashcache/pkg/dash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstream_Profile(t *testing.T) {
	t.Parallel()
	payload := dash.Profile{ID: "u1", Name: "Ada", Level: 3, XP: 1200, NextLevelXP: 2000}
	u := dash.NewUpstream(assertingServer(t, "/users/me", payload), "s3cret")

	res, err := u.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, &payload, res)
}

func TestUpstream_Attributes(t *testing.T) {
	t.Parallel()
	payload := []dash.Attribute{
		{Name: "strength", Level: 4, XP: 900},
		{Name: "focus", Level: 2, XP: 150},
	}
	u := dash.NewUpstream(assertingServer(t, "/attributes", payload), "s3cret")

	res, err := u.Attributes(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, res)
}

func TestUpstream_Workouts(t *testing.T) {
	t.Parallel()
	payload := []dash.Workout{
		{ID: "w1", Title: "Push day", PerformedAt: time.Date(2024, 3, 1, 7, 30, 0, 0, time.UTC), DurationMin: 45, Volume: 5200},
	}
	u := dash.NewUpstream(assertingServer(t, "/workouts", payload), "s3cret")

	res, err := u.Workouts(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, res)
}

func TestUpstream_Tasks(t *testing.T) {
	t.Parallel()
	payload := []dash.Task{{ID: "t1", Title: "Water plants", Done: true}}
	u := dash.NewUpstream(assertingServer(t, "/tasks", payload), "s3cret")

	res, err := u.Tasks(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, res)
}

func TestUpstream_Habits(t *testing.T) {
	t.Parallel()
	payload := []dash.Habit{{ID: "h1", Title: "Read", Streak: 12}}
	u := dash.NewUpstream(assertingServer(t, "/habits", payload), "s3cret")

	res, err := u.Habits(context.Background())
	require.NoError(t, err)
	require.Equal(t, payload, res)
}

func TestUpstream_Error(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	base, _ := url.Parse(srv.URL)
	u := dash.NewUpstream(*base, "")

	_, err := u.Profile(context.Background())
	assert.ErrorContains(t, err, "upstream fetch status")
}

func assertingServer(tb testing.TB, path string, payload any) url.URL {
	tb.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(tb, path, r.URL.Path)
		assert.Equal(tb, "Bearer s3cret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(payload)
	}))
	tb.Cleanup(srv.Close)
	u, _ := url.Parse(srv.URL)
	return *u
}
