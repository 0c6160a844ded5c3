package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vitalrack/vitalrack-api/internal/api/metrics"
	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

type trainingService struct {
	routines ports.RoutineRepository
	workouts ports.WorkoutRepository
	log      zerolog.Logger
}

// NewTrainingService returns a TrainingService implementation.
func NewTrainingService(routines ports.RoutineRepository, workouts ports.WorkoutRepository, log zerolog.Logger) ports.TrainingService {
	return &trainingService{routines: routines, workouts: workouts, log: log}
}

// fullBodyPlan builds the generated full-body template. Beginners get 8
// reps per set, everyone else 12; the plank is held for seconds and cardio
// runs for minutes, both doubled past beginner.
func fullBodyPlan(level domain.TrainingLevel) []domain.Exercise {
	reps := 12
	plankSec := 60
	cardioMin := 30
	if level == domain.LevelBeginner {
		reps = 8
		plankSec = 30
		cardioMin = 20
	}

	names := []string{
		"Sentadillas",
		"Press de banca",
		"Remo con mancuerna",
		"Peso muerto",
		"Press militar",
		"Dominadas",
		"Fondos",
		"Curl de bíceps",
		"Extensiones de tríceps",
		"Elevaciones laterales",
		"Abdominales",
	}

	plan := make([]domain.Exercise, 0, len(names)+2)
	for _, name := range names {
		plan = append(plan, domain.Exercise{Name: name, Sets: 3, Reps: reps, RestSec: 60})
	}
	plan = append(plan,
		domain.Exercise{Name: "Plancha", Sets: 3, Reps: plankSec, RestSec: 60},
		domain.Exercise{Name: "Cardio", Sets: 1, Reps: cardioMin, RestSec: 60},
	)
	return plan
}

func (s *trainingService) GenerateRoutine(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error) {
	if name == "" || !level.IsValid() {
		return nil, domain.ErrInvalidLevel
	}

	routine := &domain.Routine{
		UserID:    userID,
		Name:      name,
		Exercises: fullBodyPlan(level),
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.routines.Create(ctx, routine)
	if err != nil {
		return nil, fmt.Errorf("create routine: %w", err)
	}

	metrics.RoutinesGeneratedTotal.WithLabelValues(string(level)).Inc()
	s.log.Info().Str("user_id", userID).Str("routine_id", created.ID).Str("level", string(level)).Msg("routine generated")
	return created, nil
}

func (s *trainingService) ListRoutines(ctx context.Context, userID string) ([]domain.Routine, error) {
	return s.routines.FindByUser(ctx, userID)
}

// LogWorkout records a completed session. The routine must exist and belong
// to the caller; a routine owned by someone else is reported as not found,
// identically to one that does not exist.
func (s *trainingService) LogWorkout(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error) {
	routine, err := s.routines.FindByID(ctx, in.RoutineID)
	if err != nil {
		return nil, err
	}
	if routine.UserID != userID {
		return nil, domain.ErrRoutineNotFound
	}

	entries := make([]domain.WorkoutEntry, 0, len(in.Entries))
	for _, e := range in.Entries {
		entries = append(entries, domain.WorkoutEntry{
			ExerciseName: e.ExerciseName,
			Sets:         e.Sets,
			Reps:         e.Reps,
			WeightKg:     e.WeightKg,
		})
	}

	session := &domain.WorkoutSession{
		UserID:      userID,
		RoutineID:   in.RoutineID,
		Date:        time.Now().UTC(),
		Entries:     entries,
		DurationMin: in.DurationMin,
		Notes:       in.Notes,
	}

	created, err := s.workouts.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("log workout: %w", err)
	}

	metrics.WorkoutsLoggedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("routine_id", in.RoutineID).Int("duration_min", in.DurationMin).Msg("workout logged")
	return created, nil
}

func (s *trainingService) ListWorkouts(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	return s.workouts.FindByUser(ctx, userID)
}
