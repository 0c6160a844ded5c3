package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

const consumptionsCollection = "consumptions"

type ConsumptionRepository struct {
	coll *mongo.Collection
}

func NewConsumptionRepository(db *mongo.Database) *ConsumptionRepository {
	return &ConsumptionRepository{coll: db.Collection(consumptionsCollection)}
}

type consumptionDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"user_id"`
	FoodID     primitive.ObjectID `bson:"food_id"`
	Quantity   float64            `bson:"quantity"`
	ConsumedAt time.Time          `bson:"consumed_at"`
}

func (d consumptionDoc) toDomain() domain.Consumption {
	return domain.Consumption{
		ID:         d.ID.Hex(),
		UserID:     d.UserID.Hex(),
		FoodID:     d.FoodID.Hex(),
		Quantity:   d.Quantity,
		ConsumedAt: d.ConsumedAt,
	}
}

func (r *ConsumptionRepository) Create(ctx context.Context, c *domain.Consumption) (*domain.Consumption, error) {
	uid, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	fid, err := primitive.ObjectIDFromHex(c.FoodID)
	if err != nil {
		return nil, domain.ErrFoodNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := consumptionDoc{
		UserID:     uid,
		FoodID:     fid,
		Quantity:   c.Quantity,
		ConsumedAt: time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert consumption: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.ConsumedAt = doc.ConsumedAt
	return &created, nil
}

func (r *ConsumptionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Consumption, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "consumed_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find consumptions: %w", err)
	}
	defer cur.Close(ctx)

	var consumptions []domain.Consumption
	for cur.Next(ctx) {
		var doc consumptionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode consumption: %w", err)
		}
		consumptions = append(consumptions, doc.toDomain())
	}
	return consumptions, cur.Err()
}

// EnsureIndexes creates the per-user history index.
func (r *ConsumptionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "consumed_at", Value: -1}},
	})
	return err
}
