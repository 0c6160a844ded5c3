package ports

import (
	"context"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

// RoutineRepository persists generated routines.
type RoutineRepository interface {
	Create(ctx context.Context, r *domain.Routine) (*domain.Routine, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Routine, error)
	FindByID(ctx context.Context, id string) (*domain.Routine, error)
}

// WorkoutRepository persists logged workout sessions.
type WorkoutRepository interface {
	Create(ctx context.Context, s *domain.WorkoutSession) (*domain.WorkoutSession, error)
	FindByUser(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
}

// WorkoutEntryInput is one performed exercise in a logged session.
type WorkoutEntryInput struct {
	ExerciseName string
	Sets         int
	Reps         int
	WeightKg     float64
}

// LogWorkoutInput carries a session to be recorded against a routine the
// user owns.
type LogWorkoutInput struct {
	RoutineID   string
	DurationMin int
	Entries     []WorkoutEntryInput
	Notes       string
}

type TrainingService interface {
	GenerateRoutine(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error)
	ListRoutines(ctx context.Context, userID string) ([]domain.Routine, error)
	LogWorkout(ctx context.Context, userID string, in LogWorkoutInput) (*domain.WorkoutSession, error)
	ListWorkouts(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
}
