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

const workoutsCollection = "workout_sessions"

type WorkoutRepository struct {
	coll *mongo.Collection
}

func NewWorkoutRepository(db *mongo.Database) *WorkoutRepository {
	return &WorkoutRepository{coll: db.Collection(workoutsCollection)}
}

type workoutEntryDoc struct {
	ExerciseName string  `bson:"exercise_name"`
	Sets         int     `bson:"sets"`
	Reps         int     `bson:"reps"`
	WeightKg     float64 `bson:"weight_kg"`
}

type workoutDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	RoutineID   primitive.ObjectID `bson:"routine_id"`
	Date        time.Time          `bson:"date"`
	Entries     []workoutEntryDoc  `bson:"entries"`
	DurationMin int                `bson:"duration_min"`
	Notes       string             `bson:"notes,omitempty"`
}

func (d workoutDoc) toDomain() domain.WorkoutSession {
	entries := make([]domain.WorkoutEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, domain.WorkoutEntry(e))
	}
	return domain.WorkoutSession{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		RoutineID:   d.RoutineID.Hex(),
		Date:        d.Date,
		Entries:     entries,
		DurationMin: d.DurationMin,
		Notes:       d.Notes,
	}
}

func (r *WorkoutRepository) Create(ctx context.Context, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	uid, err := primitive.ObjectIDFromHex(session.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	rid, err := primitive.ObjectIDFromHex(session.RoutineID)
	if err != nil {
		return nil, domain.ErrRoutineNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	entries := make([]workoutEntryDoc, 0, len(session.Entries))
	for _, e := range session.Entries {
		entries = append(entries, workoutEntryDoc(e))
	}

	doc := workoutDoc{
		UserID:      uid,
		RoutineID:   rid,
		Date:        session.Date,
		Entries:     entries,
		DurationMin: session.DurationMin,
		Notes:       session.Notes,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	created := *session
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WorkoutRepository) FindByUser(ctx context.Context, userID string) ([]domain.WorkoutSession, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": uid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find workout sessions: %w", err)
	}
	defer cur.Close(ctx)

	var sessions []domain.WorkoutSession
	for cur.Next(ctx) {
		var doc workoutDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode workout session: %w", err)
		}
		sessions = append(sessions, doc.toDomain())
	}
	return sessions, cur.Err()
}

// EnsureIndexes creates the per-user listing index.
func (r *WorkoutRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
