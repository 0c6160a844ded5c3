package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
	"github.com/vitalrack/vitalrack-api/internal/core/ports"
)

type stubFoodRepo struct {
	byID        map[string]domain.Food
	searchHits  []domain.Food
	searchCalls int
	upserted    []string
}

func newStubFoodRepo() *stubFoodRepo {
	return &stubFoodRepo{byID: make(map[string]domain.Food)}
}

func (r *stubFoodRepo) Search(_ context.Context, _ string, _ int) ([]domain.Food, error) {
	r.searchCalls++
	return r.searchHits, nil
}

func (r *stubFoodRepo) FindByID(_ context.Context, id string) (*domain.Food, error) {
	if f, ok := r.byID[id]; ok {
		return &f, nil
	}
	return nil, domain.ErrFoodNotFound
}

func (r *stubFoodRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Food, error) {
	var out []domain.Food
	for _, id := range ids {
		if f, ok := r.byID[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *stubFoodRepo) UpsertByExternalID(_ context.Context, food *domain.Food) (*domain.Food, error) {
	r.upserted = append(r.upserted, food.ExternalID)
	stored := *food
	stored.ID = "id-" + food.ExternalID
	r.byID[stored.ID] = stored
	return &stored, nil
}

type stubConsumptionRepo struct {
	records []domain.Consumption
}

func (r *stubConsumptionRepo) Create(_ context.Context, c *domain.Consumption) (*domain.Consumption, error) {
	created := *c
	created.ID = "consumption-1"
	r.records = append(r.records, created)
	return &created, nil
}

func (r *stubConsumptionRepo) FindByUser(_ context.Context, userID string) ([]domain.Consumption, error) {
	var out []domain.Consumption
	for _, c := range r.records {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubSearchCache struct {
	entries map[string][]domain.Food
	sets    int
}

func newStubSearchCache() *stubSearchCache {
	return &stubSearchCache{entries: make(map[string][]domain.Food)}
}

func (c *stubSearchCache) Get(_ context.Context, query string) ([]domain.Food, bool, error) {
	foods, ok := c.entries[query]
	return foods, ok, nil
}

func (c *stubSearchCache) Set(_ context.Context, query string, foods []domain.Food) error {
	c.sets++
	c.entries[query] = foods
	return nil
}

func newTestNutritionService(foods *stubFoodRepo, consumptions *stubConsumptionRepo, cache *stubSearchCache) ports.NutritionService {
	return NewNutritionService(foods, consumptions, cache, zerolog.Nop())
}

func TestNutritionService_Search_CacheHit(t *testing.T) {
	foods := newStubFoodRepo()
	cache := newStubSearchCache()
	cache.entries["manzana"] = []domain.Food{{ID: "f1", Name: "Manzana"}}
	svc := newTestNutritionService(foods, &stubConsumptionRepo{}, cache)

	got, err := svc.Search(context.Background(), "manzana")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 0, foods.searchCalls, "catalog must not be queried on a cache hit")
}

func TestNutritionService_Search_CatalogHitIsCached(t *testing.T) {
	foods := newStubFoodRepo()
	foods.searchHits = []domain.Food{{ID: "f1", Name: "Manzana"}, {ID: "f2", Name: "Manzana asada"}}
	cache := newStubSearchCache()
	svc := newTestNutritionService(foods, &stubConsumptionRepo{}, cache)

	got, err := svc.Search(context.Background(), "  manzana  ")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, cache.sets)
	assert.Contains(t, cache.entries, "manzana", "query must be trimmed before caching")
}

func TestNutritionService_Search_FallbackSeedsSamples(t *testing.T) {
	foods := newStubFoodRepo()
	cache := newStubSearchCache()
	svc := newTestNutritionService(foods, &stubConsumptionRepo{}, cache)

	got, err := svc.Search(context.Background(), "nothing-matches")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"sample-manzana", "sample-platano"}, foods.upserted)
	for _, f := range got {
		assert.NotEmpty(t, f.ID, "fallback foods must be persisted")
	}
}

func TestNutritionService_LogConsumption(t *testing.T) {
	foods := newStubFoodRepo()
	foods.byID["f1"] = domain.Food{ID: "f1", Name: "Manzana"}
	consumptions := &stubConsumptionRepo{}
	svc := newTestNutritionService(foods, consumptions, newStubSearchCache())

	created, err := svc.LogConsumption(context.Background(), "u1", "f1", 150)
	require.NoError(t, err)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "f1", created.FoodID)
	assert.Equal(t, 150.0, created.Quantity)
}

func TestNutritionService_LogConsumption_UnknownFood(t *testing.T) {
	svc := newTestNutritionService(newStubFoodRepo(), &stubConsumptionRepo{}, newStubSearchCache())

	_, err := svc.LogConsumption(context.Background(), "u1", "missing", 100)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestNutritionService_History_JoinsFoods(t *testing.T) {
	foods := newStubFoodRepo()
	foods.byID["f1"] = domain.Food{ID: "f1", Name: "Manzana"}
	consumptions := &stubConsumptionRepo{
		records: []domain.Consumption{
			{ID: "c1", UserID: "u1", FoodID: "f1", Quantity: 100},
			{ID: "c2", UserID: "u1", FoodID: "gone", Quantity: 50},
			{ID: "c3", UserID: "other", FoodID: "f1", Quantity: 10},
		},
	}
	svc := newTestNutritionService(foods, consumptions, newStubSearchCache())

	history, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, history, 2)

	require.NotNil(t, history[0].Food)
	assert.Equal(t, "Manzana", history[0].Food.Name)
	assert.Nil(t, history[1].Food, "vanished food still yields the consumption, unjoined")
}

func TestNutritionService_History_Empty(t *testing.T) {
	svc := newTestNutritionService(newStubFoodRepo(), &stubConsumptionRepo{}, newStubSearchCache())

	history, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
