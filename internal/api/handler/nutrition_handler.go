package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

type NutritionHandler struct {
	service ports.NutritionService
}

func NewNutritionHandler(service ports.NutritionService) *NutritionHandler {
	return &NutritionHandler{service: service}
}

type logConsumptionRequest struct {
	FoodID   string  `json:"food_id"  validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// Search answers GET /nutrition/search?q=<term>.
//
// @Summary      Search foods
// @Tags         nutrition
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  true  "Search term"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /nutrition/search [get]
func (h *NutritionHandler) Search(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	foods, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"foods": foods})
}

// LogConsumption records that the authenticated user ate a catalog food.
//
// @Summary      Log a consumption
// @Tags         nutrition
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  logConsumptionRequest  true  "Consumption"
// @Success      201  {object}  map[string]any
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /nutrition/log [post]
func (h *NutritionHandler) LogConsumption(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req logConsumptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	consumption, err := h.service.LogConsumption(c.Request().Context(), userID, req.FoodID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"consumption": consumption})
}

// History returns the authenticated user's consumptions, newest first.
//
// @Summary      Consumption history
// @Tags         nutrition
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /nutrition/history [get]
func (h *NutritionHandler) History(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	history, err := h.service.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"history": history})
}
