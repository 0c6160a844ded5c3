package domain

import "time"

// WorkoutEntry records what was actually performed for one exercise.
type WorkoutEntry struct {
	ExerciseName string  `json:"exercise_name"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightKg     float64 `json:"weight_kg"`
}

// WorkoutSession is a completed training session logged against a routine.
type WorkoutSession struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	RoutineID   string         `json:"routine_id"`
	Date        time.Time      `json:"date"`
	Entries     []WorkoutEntry `json:"entries"`
	DurationMin int            `json:"duration_min"`
	Notes       string         `json:"notes,omitempty"`
}
