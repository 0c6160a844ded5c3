package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vitalrack/vitalrack-api/internal/core/domain"
)

const routinesCollection = "routines"

type RoutineRepository struct {
	coll *mongo.Collection
}

func NewRoutineRepository(db *mongo.Database) *RoutineRepository {
	return &RoutineRepository{coll: db.Collection(routinesCollection)}
}

type exerciseDoc struct {
	Name    string `bson:"name"`
	Sets    int    `bson:"sets"`
	Reps    int    `bson:"reps"`
	RestSec int    `bson:"rest_sec"`
}

type routineDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Name      string             `bson:"name"`
	Exercises []exerciseDoc      `bson:"exercises"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d routineDoc) toDomain() domain.Routine {
	exercises := make([]domain.Exercise, 0, len(d.Exercises))
	for _, e := range d.Exercises {
		exercises = append(exercises, domain.Exercise(e))
	}
	return domain.Routine{
		ID:        d.ID.Hex(),
		UserID:    d.UserID.Hex(),
		Name:      d.Name,
		Exercises: exercises,
		CreatedAt: d.CreatedAt,
	}
}

func (r *RoutineRepository) Create(ctx context.Context, routine *domain.Routine) (*domain.Routine, error) {
	uid, err := primitive.ObjectIDFromHex(routine.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	exercises := make([]exerciseDoc, 0, len(routine.Exercises))
	for _, e := range routine.Exercises {
		exercises = append(exercises, exerciseDoc(e))
	}

	doc := routineDoc{
		UserID:    uid,
		Name:      routine.Name,
		Exercises: exercises,
		CreatedAt: routine.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}

	created := *routine
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *RoutineRepository) FindByUser(ctx context.Context, userID string) ([]domain.Routine, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find routines: %w", err)
	}
	defer cur.Close(ctx)

	var routines []domain.Routine
	for cur.Next(ctx) {
		var doc routineDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode routine: %w", err)
		}
		routines = append(routines, doc.toDomain())
	}
	return routines, cur.Err()
}

func (r *RoutineRepository) FindByID(ctx context.Context, id string) (*domain.Routine, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRoutineNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc routineDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRoutineNotFound
		}
		return nil, fmt.Errorf("find routine: %w", err)
	}
	routine := doc.toDomain()
	return &routine, nil
}

// EnsureIndexes creates the per-user listing index.
func (r *RoutineRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
