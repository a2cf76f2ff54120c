package bookingRepo

import (
	"context"
	"time"

	"pawbooker/models"
)

// BookingRepository defines persistence operations for booking rows.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	// FindActiveInRange returns CONFIRMED and non-expired HELD bookings for
	// the service whose window intersects [from, to).
	FindActiveInRange(serviceID string, from, to, now time.Time) ([]models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(id string, status models.BookingStatus, clearHoldExpiry bool) error
	// DeleteExpiredHeld removes every HELD row whose hold deadline has
	// passed and returns the number of rows removed.
	DeleteExpiredHeld(now time.Time) (int64, error)
	// HoldTransactionally inserts a HELD booking and re-validates capacity
	// for the exact slot window inside a single transaction. Returns
	// ErrCapacityExceeded when the insert would overflow capacity.
	HoldTransactionally(ctx context.Context, booking *models.Booking, capacity int) error
}
