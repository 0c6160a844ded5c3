package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

type TrainingHandler struct {
	service ports.TrainingService
}

func NewTrainingHandler(service ports.TrainingService) *TrainingHandler {
	return &TrainingHandler{service: service}
}

type generateRoutineRequest struct {
	Name  string `json:"name"  validate:"required"`
	Level string `json:"level" validate:"required,oneof=beginner intermediate advanced"`
}

type workoutEntryRequest struct {
	ExerciseName string  `json:"exercise_name" validate:"required"`
	Sets         int     `json:"sets"          validate:"required,gt=0"`
	Reps         int     `json:"reps"          validate:"required,gt=0"`
	WeightKg     float64 `json:"weight_kg"     validate:"gte=0"`
}

type logWorkoutRequest struct {
	RoutineID   string                `json:"routine_id"   validate:"required"`
	DurationMin int                   `json:"duration_min" validate:"required,gt=0"`
	Entries     []workoutEntryRequest `json:"entries"      validate:"required,min=1,dive"`
	Notes       string                `json:"notes"`
}

// GenerateRoutine creates a full-body routine scaled to the given level.
//
// @Summary      Generate a routine
// @Tags         training
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  generateRoutineRequest  true  "Routine parameters"
// @Success      201  {object}  map[string]any
// @Failure      422  {object}  map[string]string
// @Router       /training/generate [post]
func (h *TrainingHandler) GenerateRoutine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req generateRoutineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	routine, err := h.service.GenerateRoutine(c.Request().Context(), userID, req.Name, domain.TrainingLevel(req.Level))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"routine": routine})
}

// ListRoutines returns the authenticated user's routines, newest first.
//
// @Summary      List routines
// @Tags         training
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /training/routines [get]
func (h *TrainingHandler) ListRoutines(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	routines, err := h.service.ListRoutines(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"routines": routines})
}

// LogWorkout records a completed session against one of the user's routines.
//
// @Summary      Log a workout session
// @Tags         training
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  logWorkoutRequest  true  "Session details"
// @Success      201  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /training/log [post]
func (h *TrainingHandler) LogWorkout(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req logWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	entries := make([]ports.WorkoutEntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, ports.WorkoutEntryInput{
			ExerciseName: e.ExerciseName,
			Sets:         e.Sets,
			Reps:         e.Reps,
			WeightKg:     e.WeightKg,
		})
	}

	session, err := h.service.LogWorkout(c.Request().Context(), userID, ports.LogWorkoutInput{
		RoutineID:   req.RoutineID,
		DurationMin: req.DurationMin,
		Entries:     entries,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"session": session})
}

// ListWorkouts returns the authenticated user's sessions, newest first.
//
// @Summary      List workout sessions
// @Tags         training
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /training/sessions [get]
func (h *TrainingHandler) ListWorkouts(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	sessions, err := h.service.ListWorkouts(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"sessions": sessions})
}
