package ports

import (
	"context"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

// FoodRepository persists the food catalog.
type FoodRepository interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Food, error)
	FindByID(ctx context.Context, id string) (*domain.Food, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Food, error)
	UpsertByExternalID(ctx context.Context, food *domain.Food) (*domain.Food, error)
}

// ConsumptionRepository persists per-user consumption records.
type ConsumptionRepository interface {
	Create(ctx context.Context, c *domain.Consumption) (*domain.Consumption, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Consumption, error)
}

// HistoryEntry is a consumption joined with the food it refers to.
type HistoryEntry struct {
	Consumption domain.Consumption `json:"consumption"`
	Food        *domain.Food       `json:"food,omitempty"`
}

type NutritionService interface {
	Search(ctx context.Context, query string) ([]domain.Food, error)
	LogConsumption(ctx context.Context, userID, foodID string, quantity float64) (*domain.Consumption, error)
	History(ctx context.Context, userID string) ([]HistoryEntry, error)
}
