package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vitalrack/vitalrack-api/internal/api/metrics"
	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

const searchLimit = 10

// SearchCache abstracts the query-result cache (Redis).
type SearchCache interface {
	Get(ctx context.Context, query string) ([]domain.Food, bool, error)
	Set(ctx context.Context, query string, foods []domain.Food) error
}

// sampleFoods is the builtin fallback served (and persisted) when the
// catalog has no match for a query, so a fresh deployment still answers
// searches with something usable.
var sampleFoods = []domain.Food{
	{ExternalID: "sample-manzana", Name: "Manzana", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{ExternalID: "sample-platano", Name: "Plátano", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3},
}

type nutritionService struct {
	foods        ports.FoodRepository
	consumptions ports.ConsumptionRepository
	cache        SearchCache
	log          zerolog.Logger
}

// NewNutritionService returns a NutritionService implementation.
func NewNutritionService(
	foods ports.FoodRepository,
	consumptions ports.ConsumptionRepository,
	cache SearchCache,
	log zerolog.Logger,
) ports.NutritionService {
	return &nutritionService{
		foods:        foods,
		consumptions: consumptions,
		cache:        cache,
		log:          log,
	}
}

// Search answers a case-insensitive substring query against the food
// catalog. Results are cached per query; cache failures are logged and
// ignored so Redis being down only costs latency, never correctness.
func (s *nutritionService) Search(ctx context.Context, query string) ([]domain.Food, error) {
	query = strings.TrimSpace(query)

	if foods, ok, err := s.cache.Get(ctx, query); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("search cache read failed")
	} else if ok {
		metrics.FoodSearchesTotal.WithLabelValues("cache").Inc()
		return foods, nil
	}

	foods, err := s.foods.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}

	if len(foods) == 0 {
		foods, err = s.seedSamples(ctx)
		if err != nil {
			return nil, err
		}
		metrics.FoodSearchesTotal.WithLabelValues("fallback").Inc()
		s.log.Warn().Str("query", query).Msg("catalog empty for query, serving sample foods")
		return foods, nil
	}

	if err := s.cache.Set(ctx, query, foods); err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("search cache write failed")
	}

	metrics.FoodSearchesTotal.WithLabelValues("catalog").Inc()
	return foods, nil
}

// seedSamples upserts the builtin sample set, keyed by external id so
// repeated fallbacks never duplicate documents.
func (s *nutritionService) seedSamples(ctx context.Context) ([]domain.Food, error) {
	out := make([]domain.Food, 0, len(sampleFoods))
	for i := range sampleFoods {
		f := sampleFoods[i]
		stored, err := s.foods.UpsertByExternalID(ctx, &f)
		if err != nil {
			return nil, fmt.Errorf("seed sample food %q: %w", f.ExternalID, err)
		}
		out = append(out, *stored)
	}
	return out, nil
}

// LogConsumption records that the user ate quantity grams of a catalog food.
func (s *nutritionService) LogConsumption(ctx context.Context, userID, foodID string, quantity float64) (*domain.Consumption, error) {
	if _, err := s.foods.FindByID(ctx, foodID); err != nil {
		return nil, err
	}

	created, err := s.consumptions.Create(ctx, &domain.Consumption{
		UserID:   userID,
		FoodID:   foodID,
		Quantity: quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("log consumption: %w", err)
	}

	metrics.ConsumptionsLoggedTotal.Inc()
	s.log.Info().Str("user_id", userID).Str("food_id", foodID).Float64("quantity", quantity).Msg("consumption logged")
	return created, nil
}

// History returns the user's consumptions, newest first, each joined with
// its food. A consumption whose food has since vanished is still returned,
// just without the join.
func (s *nutritionService) History(ctx context.Context, userID string) ([]ports.HistoryEntry, error) {
	consumptions, err := s.consumptions.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	if len(consumptions) == 0 {
		return []ports.HistoryEntry{}, nil
	}

	ids := make([]string, 0, len(consumptions))
	seen := make(map[string]struct{}, len(consumptions))
	for _, c := range consumptions {
		if _, ok := seen[c.FoodID]; ok {
			continue
		}
		seen[c.FoodID] = struct{}{}
		ids = append(ids, c.FoodID)
	}

	foods, err := s.foods.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load history foods: %w", err)
	}
	byID := make(map[string]domain.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	entries := make([]ports.HistoryEntry, 0, len(consumptions))
	for _, c := range consumptions {
		entry := ports.HistoryEntry{Consumption: c}
		if f, ok := byID[c.FoodID]; ok {
			food := f
			entry.Food = &food
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
