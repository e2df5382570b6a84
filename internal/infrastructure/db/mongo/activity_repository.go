package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

const activitiesCollection = "activities"

// ActivityRepository implements ports.ActivityRepository.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activitiesCollection)}
}

type mongoActivity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Description string             `bson:"description"`
	Timestamp   time.Time          `bson:"timestamp"`
}

func (m *mongoActivity) toDomain() *domain.Activity {
	return &domain.Activity{
		ID:          m.ID.Hex(),
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}
}

func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Activity
	for cursor.Next(ctx) {
		var ma mongoActivity
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		out = append(out, ma.toDomain())
	}
	return out, cursor.Err()
}

func (r *ActivityRepository) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	doc := mongoActivity{Description: a.Description, Timestamp: a.Timestamp}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ActivityRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *ActivityRepository) InsertMany(ctx context.Context, as []*domain.Activity) error {
	docs := make([]interface{}, 0, len(as))
	for _, a := range as {
		docs = append(docs, mongoActivity{Description: a.Description, Timestamp: a.Timestamp})
	}
	_, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert activities: %w", err)
	}
	return nil
}
