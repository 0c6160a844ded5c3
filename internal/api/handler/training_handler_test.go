package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

type stubTrainingService struct {
	generateFn     func(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error)
	listRoutinesFn func(ctx context.Context, userID string) ([]domain.Routine, error)
	logWorkoutFn   func(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error)
	listWorkoutsFn func(ctx context.Context, userID string) ([]domain.WorkoutSession, error)
}

func (s *stubTrainingService) GenerateRoutine(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error) {
	return s.generateFn(ctx, userID, name, level)
}

func (s *stubTrainingService) ListRoutines(ctx context.Context, userID string) ([]domain.Routine, error) {
	return s.listRoutinesFn(ctx, userID)
}

func (s *stubTrainingService) LogWorkout(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error) {
	return s.logWorkoutFn(ctx, userID, in)
}

func (s *stubTrainingService) ListWorkouts(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	return s.listWorkoutsFn(ctx, userID)
}

func newAuthedJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	return c, rec
}

func TestTrainingHandler_GenerateRoutine(t *testing.T) {
	stub := &stubTrainingService{
		generateFn: func(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error) {
			if userID != "u1" || name != "Full body" || level != domain.LevelBeginner {
				t.Fatalf("unexpected args: %s %s %s", userID, name, level)
			}
			return &domain.Routine{ID: "r1", UserID: userID, Name: name}, nil
		},
	}
	h := NewTrainingHandler(stub)

	c, rec := newAuthedJSONContext(http.MethodPost, "/training/generate", `{"name":"Full body","level":"beginner"}`)
	if err := h.GenerateRoutine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTrainingHandler_GenerateRoutine_BadLevel(t *testing.T) {
	h := NewTrainingHandler(&stubTrainingService{
		generateFn: func(ctx context.Context, userID, name string, level domain.TrainingLevel) (*domain.Routine, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newAuthedJSONContext(http.MethodPost, "/training/generate", `{"name":"Full body","level":"expert"}`)
	err := h.GenerateRoutine(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestTrainingHandler_LogWorkout(t *testing.T) {
	stub := &stubTrainingService{
		logWorkoutFn: func(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error) {
			if in.RoutineID != "r1" || in.DurationMin != 45 || len(in.Entries) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.WorkoutSession{ID: "s1", UserID: userID, RoutineID: in.RoutineID}, nil
		},
	}
	h := NewTrainingHandler(stub)

	body := `{"routine_id":"r1","duration_min":45,"entries":[{"exercise_name":"Sentadillas","sets":3,"reps":8,"weight_kg":60}]}`
	c, rec := newAuthedJSONContext(http.MethodPost, "/training/log", body)
	if err := h.LogWorkout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTrainingHandler_LogWorkout_EmptyEntries(t *testing.T) {
	h := NewTrainingHandler(&stubTrainingService{
		logWorkoutFn: func(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newAuthedJSONContext(http.MethodPost, "/training/log", `{"routine_id":"r1","duration_min":45,"entries":[]}`)
	err := h.LogWorkout(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestTrainingHandler_LogWorkout_ForeignRoutine(t *testing.T) {
	h := NewTrainingHandler(&stubTrainingService{
		logWorkoutFn: func(ctx context.Context, userID string, in ports.LogWorkoutInput) (*domain.WorkoutSession, error) {
			return nil, domain.ErrRoutineNotFound
		},
	})

	body := `{"routine_id":"r1","duration_min":45,"entries":[{"exercise_name":"Sentadillas","sets":3,"reps":8,"weight_kg":60}]}`
	c, _ := newAuthedJSONContext(http.MethodPost, "/training/log", body)
	if err := h.LogWorkout(c); !errors.Is(err, domain.ErrRoutineNotFound) {
		t.Fatalf("expected ErrRoutineNotFound to propagate, got %v", err)
	}
}

func TestTrainingHandler_ListRoutines(t *testing.T) {
	stub := &stubTrainingService{
		listRoutinesFn: func(ctx context.Context, userID string) ([]domain.Routine, error) {
			return []domain.Routine{{ID: "r1", UserID: userID}}, nil
		},
	}
	h := NewTrainingHandler(stub)

	c, rec := newAuthedJSONContext(http.MethodGet, "/training/routines", "")
	if err := h.ListRoutines(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTrainingHandler_ListWorkouts(t *testing.T) {
	stub := &stubTrainingService{
		listWorkoutsFn: func(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
			return []domain.WorkoutSession{{ID: "s1", UserID: userID}}, nil
		},
	}
	h := NewTrainingHandler(stub)

	c, rec := newAuthedJSONContext(http.MethodGet, "/training/sessions", "")
	if err := h.ListWorkouts(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
