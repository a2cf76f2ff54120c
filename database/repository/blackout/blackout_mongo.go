package blackoutRepo

import (
	"context"
	"fmt"
	"time"

	"pawbooker/database"
	"pawbooker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBlackoutRepo implements BlackoutRepository using MongoDB.
type MongoBlackoutRepo struct {
	coll *mongo.Collection
}

// NewMongoBlackoutRepo constructs a new instance of MongoBlackoutRepo.
func NewMongoBlackoutRepo() BlackoutRepository {
	repo := &MongoBlackoutRepo{
		coll: database.DB().Collection("blackouts"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{
			{Key: "start_date_time", Value: 1},
			{Key: "end_date_time", Value: 1},
		}},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		fmt.Printf("warning: failed to create blackout indexes: %v\n", err)
	}
	return repo
}

// FindInRange returns blackouts whose span intersects [from, to).
func (repo *MongoBlackoutRepo) FindInRange(from, to time.Time) ([]models.Blackout, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"start_date_time": bson.M{"$lt": to},
		"end_date_time":   bson.M{"$gt": from},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching blackouts: %w", err)
	}
	defer cursor.Close(ctx)

	var blackouts []models.Blackout
	if err := cursor.All(ctx, &blackouts); err != nil {
		return nil, fmt.Errorf("error decoding blackouts: %w", err)
	}
	return blackouts, nil
}

// GetAll retrieves every stored blackout, soonest first.
func (repo *MongoBlackoutRepo) GetAll() ([]models.Blackout, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_date_time", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching blackouts: %w", err)
	}
	defer cursor.Close(ctx)

	var blackouts []models.Blackout
	if err := cursor.All(ctx, &blackouts); err != nil {
		return nil, fmt.Errorf("error decoding blackouts: %w", err)
	}
	return blackouts, nil
}

// Create inserts a new blackout document.
func (repo *MongoBlackoutRepo) Create(blackout *models.Blackout) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, blackout); err != nil {
		return fmt.Errorf("error creating blackout: %w", err)
	}
	return nil
}

// Delete removes a blackout record.
func (repo *MongoBlackoutRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error removing blackout with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blackout with id %s not found", id)
	}
	return nil
}
