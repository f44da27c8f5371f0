package dash

import "time"

// Profile is the signed-in user and their overall progression.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	XP          int64  `json:"xp"`
	NextLevelXP int64  `json:"nextLevelXp"`
}

// Attribute is one gamified stat (strength, focus, ...) with its own level.
type Attribute struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	XP    int64  `json:"xp"`
}

type Workout struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PerformedAt time.Time `json:"performedAt"`
	DurationMin int       `json:"durationMin"`
	Volume      float64   `json:"volume"`
}

type Task struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Done  bool       `json:"done"`
	Due   *time.Time `json:"due,omitempty"`
}

type Habit struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Streak     int        `json:"streak"`
	LastDoneAt *time.Time `json:"lastDoneAt,omitempty"`
}
