package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for frequently used fields in queries.
func (repo *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Compound index backing both the window-intersection query and the
	// exact-slot capacity re-count.
	slotIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "service_id", Value: 1},
			{Key: "start_date_time", Value: 1},
			{Key: "end_date_time", Value: 1},
			{Key: "status", Value: 1},
		},
	}
	// Index for the expired-hold sweep.
	sweepIdx := mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "hold_expires_at", Value: 1},
		},
	}

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		slotIdx,
		sweepIdx,
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
