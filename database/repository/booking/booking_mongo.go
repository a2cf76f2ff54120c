package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"pawbooker/database"
	"pawbooker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to create booking indexes: %v\n", err)
	}
	return repo
}

// activeFilter matches bookings that count toward capacity: CONFIRMED rows,
// plus HELD rows whose hold has not yet expired. Expired holds are logically
// absent even before the sweep removes them.
func activeFilter(now time.Time) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"status": models.BookingConfirmed},
			bson.M{
				"status":          models.BookingHeld,
				"hold_expires_at": bson.M{"$gt": now},
			},
		},
	}
}

// GetByID retrieves a booking by id. Returns (nil, nil) when absent.
func (repo *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// FindActiveInRange returns capacity-counting bookings for the service whose
// window intersects [from, to).
func (repo *MongoBookingRepo) FindActiveInRange(serviceID string, from, to, now time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"service_id":      serviceID,
		"start_date_time": bson.M{"$lt": to},
		"end_date_time":   bson.M{"$gt": from},
	}
	for k, v := range activeFilter(now) {
		filter[k] = v
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// UpdateStatus transitions a booking to a new status, optionally clearing the
// hold deadline (used when confirming a held booking).
func (repo *MongoBookingRepo) UpdateStatus(id string, status models.BookingStatus, clearHoldExpiry bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	if clearHoldExpiry {
		update["$unset"] = bson.M{"hold_expires_at": ""}
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", id)
	}
	return nil
}

// DeleteExpiredHeld removes lapsed holds. Safe to run concurrently and
// repeatedly: rows already deleted simply no longer match.
func (repo *MongoBookingRepo) DeleteExpiredHeld(now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":          models.BookingHeld,
		"hold_expires_at": bson.M{"$lte": now},
	}
	res, err := repo.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired holds: %w", err)
	}
	return res.DeletedCount, nil
}
