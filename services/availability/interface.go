package availability

import (
	"time"

	blackoutRepo "pawbooker/database/repository/blackout"
	bookingRepo "pawbooker/database/repository/booking"
	ruleRepo "pawbooker/database/repository/rule"
	serviceRepo "pawbooker/database/repository/service"

	"pawbooker/models"
)

// Engine answers availability queries and manages slot holds.
type Engine interface {
	OpenIntervals(serviceID string, from, to time.Time) ([]models.TimeInterval, error)
	FirstOpenSlot(serviceID string, durationMins int, from time.Time) (*time.Time, error)
	HoldSlot(draft models.BookingDraft) (string, error)
	ConfirmHeldBooking(bookingID string) error
	CancelBooking(bookingID string) error
	CleanupExpiredHolds() (int64, error)
}

// DefaultEngine implements Engine against the storage repositories. It keeps
// no in-memory locks: every operation is a short-lived unit of work, and the
// only concurrency guard is the capacity re-check inside the hold
// transaction.
type DefaultEngine struct {
	ServiceRepo  serviceRepo.ServiceRepository
	BookingRepo  bookingRepo.BookingRepository
	BlackoutRepo blackoutRepo.BlackoutRepository
	RuleRepo     ruleRepo.RuleRepository

	// Location is the business timezone used to expand weekly rules.
	Location *time.Location
	// HoldTTL is how long a hold soft-locks its slot. Zero means the
	// 15-minute default.
	HoldTTL time.Duration
}

const defaultHoldTTL = 15 * time.Minute

func (e *DefaultEngine) holdTTL() time.Duration {
	if e.HoldTTL > 0 {
		return e.HoldTTL
	}
	return defaultHoldTTL
}

func (e *DefaultEngine) location() *time.Location {
	if e.Location != nil {
		return e.Location
	}
	return time.UTC
}
