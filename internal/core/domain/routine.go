package domain

import "time"

// TrainingLevel scales the rep scheme of a generated routine.
type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "beginner"
	LevelIntermediate TrainingLevel = "intermediate"
	LevelAdvanced     TrainingLevel = "advanced"
)

// IsValid reports whether the level is one of the known training levels.
func (l TrainingLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Exercise is one prescribed movement inside a routine.
type Exercise struct {
	Name    string `json:"name"`
	Sets    int    `json:"sets"`
	Reps    int    `json:"reps"`
	RestSec int    `json:"rest_sec"`
}

// Routine is a generated workout plan owned by a single user.
type Routine struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"created_at"`
}
