package ruleRepo

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

// MongoRuleRepo implements RuleRepository using MongoDB.
type MongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new instance of MongoRuleRepo.
func NewMongoRuleRepo() RuleRepository {
	repo := &MongoRuleRepo{
		coll: database.DB().Collection("availability_rules"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// One rule per weekday.
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "day_of_week", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := repo.coll.Indexes().CreateOne(ctx, idx); err != nil {
		fmt.Printf("warning: failed to create rule indexes: %v\n", err)
	}
	return repo
}

// FindEnabled returns all enabled weekly rules.
func (repo *MongoRuleRepo) FindEnabled() ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"enabled": true})
	if err != nil {
		return nil, fmt.Errorf("error fetching enabled rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding rules: %w", err)
	}
	return rules, nil
}

// GetAll retrieves every stored rule ordered by weekday.
func (repo *MongoRuleRepo) GetAll() ([]models.AvailabilityRule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("error decoding rules: %w", err)
	}
	return rules, nil
}

// Upsert creates or replaces the rule for its weekday.
func (repo *MongoRuleRepo) Upsert(rule *models.AvailabilityRule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"day_of_week": rule.DayOfWeek}
	update := bson.M{"$set": rule}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting rule for weekday %d: %w", rule.DayOfWeek, err)
	}
	return nil
}
