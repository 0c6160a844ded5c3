package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

const foodsCollection = "foods"

type FoodRepository struct {
	coll *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{coll: db.Collection(foodsCollection)}
}

type foodDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID string             `bson:"external_id"`
	Name       string             `bson:"name"`
	Calories   float64            `bson:"calories"`
	Protein    float64            `bson:"protein"`
	Carbs      float64            `bson:"carbs"`
	Fat        float64            `bson:"fat"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d foodDoc) toDomain() domain.Food {
	return domain.Food{
		ID:         d.ID.Hex(),
		ExternalID: d.ExternalID,
		Name:       d.Name,
		Calories:   d.Calories,
		Protein:    d.Protein,
		Carbs:      d.Carbs,
		Fat:        d.Fat,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

// Search matches food names containing the query, case-insensitively. The
// query is regex-escaped so user input can never change the match semantics.
func (r *FoodRepository) Search(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"name": bson.M{"$regex": regexp.QuoteMeta(query), "$options": "i"}}
	opts := options.Find().SetLimit(int64(limit)).SetSort(bson.D{{Key: "name", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer cur.Close(ctx)

	var foods []domain.Food
	for cur.Next(ctx) {
		var doc foodDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode food: %w", err)
		}
		foods = append(foods, doc.toDomain())
	}
	return foods, cur.Err()
}

func (r *FoodRepository) FindByID(ctx context.Context, id string) (*domain.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFoodNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc foodDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, fmt.Errorf("find food: %w", err)
	}
	food := doc.toDomain()
	return &food, nil
}

func (r *FoodRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Food, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	defer cur.Close(ctx)

	var foods []domain.Food
	for cur.Next(ctx) {
		var doc foodDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode food: %w", err)
		}
		foods = append(foods, doc.toDomain())
	}
	return foods, cur.Err()
}

// UpsertByExternalID inserts or refreshes a catalog entry keyed by its
// external id and returns the stored document.
func (r *FoodRepository) UpsertByExternalID(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"name":       food.Name,
			"calories":   food.Calories,
			"protein":    food.Protein,
			"carbs":      food.Carbs,
			"fat":        food.Fat,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"external_id": food.ExternalID,
			"created_at":  now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc foodDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"external_id": food.ExternalID}, update, opts).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("upsert food %q: %w", food.ExternalID, err)
	}
	stored := doc.toDomain()
	return &stored, nil
}

// EnsureIndexes creates the unique external id index and the name index
// used by Search.
func (r *FoodRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
