package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pawbooker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrCapacityExceeded is returned when inserting a hold would push the exact
// slot window past the service capacity.
var ErrCapacityExceeded = errors.New("slot capacity exceeded")

// HoldTransactionally inserts the HELD booking and re-counts the active
// bookings sharing the exact (start, end) window inside one transaction.
// The count-after-insert closes the check-then-act race between concurrent
// holds: whichever transaction commits second sees the overflow and aborts.
func (repo *MongoBookingRepo) HoldTransactionally(
	ctx context.Context,
	booking *models.Booking,
	capacity int,
) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert hold failed: %w", err)
		}

		filter := bson.M{
			"service_id":      booking.ServiceID,
			"start_date_time": booking.StartDateTime,
			"end_date_time":   booking.EndDateTime,
		}
		for k, v := range activeFilter(time.Now().UTC()) {
			filter[k] = v
		}

		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("capacity re-count failed: %w", err)
		}
		if count > int64(capacity) {
			return ErrCapacityExceeded
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			return ErrCapacityExceeded
		}
		return fmt.Errorf("hold transaction failed: %w", err)
	}

	return nil
}
