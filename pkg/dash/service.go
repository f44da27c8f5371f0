package dash

import "context"

// Service is a source of dashboard data.
type Service interface {
	// Profile fetches the signed-in user's profile and progression.
	Profile(ctx context.Context) (*Profile, error)

	Attributes(ctx context.Context) ([]Attribute, error)

	// Workouts fetches recent workout records, newest first.
	Workouts(ctx context.Context) ([]Workout, error)

	Tasks(ctx context.Context) ([]Task, error)

	Habits(ctx context.Context) ([]Habit, error)
}
