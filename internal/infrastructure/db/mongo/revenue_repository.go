package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulsedash/dashboard-api/internal/core/domain"
)

const revenueCollection = "revenue"

// RevenueRepository implements ports.RevenueRepository.
type RevenueRepository struct {
	coll *mongo.Collection
}

func NewRevenueRepository(db *mongo.Database) *RevenueRepository {
	return &RevenueRepository{coll: db.Collection(revenueCollection)}
}

type mongoRevenue struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Month   string             `bson:"month"`
	Revenue float64            `bson:"revenue"`
}

func (r *RevenueRepository) List(ctx context.Context) ([]*domain.Revenue, error) {
	opts := options.Find().SetSort(bson.D{{Key: "month", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Revenue
	for cursor.Next(ctx) {
		var mr mongoRevenue
		if err := cursor.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode revenue: %w", err)
		}
		out = append(out, &domain.Revenue{ID: mr.ID.Hex(), Month: mr.Month, Revenue: mr.Revenue})
	}
	return out, cursor.Err()
}

func (r *RevenueRepository) SumRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$revenue"}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return 0, cursor.Err()
	}

	var result struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, fmt.Errorf("decode revenue total: %w", err)
	}
	return result.Total, nil
}

func (r *RevenueRepository) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

func (r *RevenueRepository) InsertMany(ctx context.Context, rows []*domain.Revenue) error {
	docs := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, mongoRevenue{Month: row.Month, Revenue: row.Revenue})
	}
	_, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}
