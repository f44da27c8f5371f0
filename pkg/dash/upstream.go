package dash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Upstream is the remote data/auth service.
type Upstream struct {
	URL    url.URL
	token  string
	client *http.Client
}

var _ Service = (*Upstream)(nil)

func NewUpstream(baseURL url.URL, token string) *Upstream {
	return &Upstream{
		URL:    baseURL,
		token:  token,
		client: http.DefaultClient,
	}
}

func (u *Upstream) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := u.get(ctx, &p, "users", "me"); err != nil {
		return nil, err
	}
	return &p, nil
}

func (u *Upstream) Attributes(ctx context.Context) ([]Attribute, error) {
	var attrs []Attribute
	if err := u.get(ctx, &attrs, "attributes"); err != nil {
		return nil, err
	}
	return attrs, nil
}

func (u *Upstream) Workouts(ctx context.Context) ([]Workout, error) {
	var workouts []Workout
	if err := u.get(ctx, &workouts, "workouts"); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (u *Upstream) Tasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := u.get(ctx, &tasks, "tasks"); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (u *Upstream) Habits(ctx context.Context) ([]Habit, error) {
	var habits []Habit
	if err := u.get(ctx, &habits, "habits"); err != nil {
		return nil, err
	}
	return habits, nil
}

func (u *Upstream) get(ctx context.Context, out any, path ...string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL.JoinPath(path...).String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("upstream fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream fetch status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream fetch decode: %w", err)
	}
	return nil
}
