package serviceRepo

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

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() ServiceRepository {
	repo := &MongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.coll.Indexes().CreateOne(ctx, idx); err != nil {
		fmt.Printf("warning: failed to create service indexes: %v\n", err)
	}
	return repo
}

// GetByID retrieves a service by id. Returns (nil, nil) when absent.
func (repo *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var service models.Service
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &service, nil
}

// GetAll retrieves the full service catalog.
func (repo *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// Create inserts a new service document.
func (repo *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}
