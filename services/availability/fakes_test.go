package availability

import (
	"context"
	"sync"
	"time"

	bookingRepo "pawbooker/database/repository/booking"
	"pawbooker/models"
)

// In-memory repositories backing the engine tests.

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(s *models.Service) error {
	r.services[s.ID] = s
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) active(b *models.Booking, now time.Time) bool {
	switch b.Status {
	case models.BookingConfirmed:
		return true
	case models.BookingHeld:
		return b.HoldExpiresAt != nil && b.HoldExpiresAt.After(now)
	default:
		return false
	}
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindActiveInRange(serviceID string, from, to, now time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ServiceID != serviceID || !r.active(b, now) {
			continue
		}
		if b.StartDateTime.Before(to) && b.EndDateTime.After(from) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, status models.BookingStatus, clearHoldExpiry bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil
	}
	b.Status = status
	if clearHoldExpiry {
		b.HoldExpiresAt = nil
	}
	return nil
}

func (r *fakeBookingRepo) DeleteExpiredHeld(now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, b := range r.bookings {
		if b.Status == models.BookingHeld && b.HoldExpiresAt != nil && !b.HoldExpiresAt.After(now) {
			delete(r.bookings, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) HoldTransactionally(ctx context.Context, booking *models.Booking, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = booking

	now := time.Now().UTC()
	count := 0
	for _, b := range r.bookings {
		if b.ServiceID == booking.ServiceID &&
			b.StartDateTime.Equal(booking.StartDateTime) &&
			b.EndDateTime.Equal(booking.EndDateTime) &&
			r.active(b, now) {
			count++
		}
	}
	if count > capacity {
		delete(r.bookings, booking.ID)
		return bookingRepo.ErrCapacityExceeded
	}
	return nil
}

type fakeBlackoutRepo struct {
	blackouts []models.Blackout
}

func (r *fakeBlackoutRepo) FindInRange(from, to time.Time) ([]models.Blackout, error) {
	var out []models.Blackout
	for _, b := range r.blackouts {
		if b.StartDateTime.Before(to) && b.EndDateTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlackoutRepo) GetAll() ([]models.Blackout, error) { return r.blackouts, nil }

func (r *fakeBlackoutRepo) Create(b *models.Blackout) error {
	r.blackouts = append(r.blackouts, *b)
	return nil
}

func (r *fakeBlackoutRepo) Delete(id string) error { return nil }

type fakeRuleRepo struct {
	rules []models.AvailabilityRule
}

func (r *fakeRuleRepo) FindEnabled() ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, rule := range r.rules {
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) GetAll() ([]models.AvailabilityRule, error) { return r.rules, nil }

func (r *fakeRuleRepo) Upsert(rule *models.AvailabilityRule) error {
	for i := range r.rules {
		if r.rules[i].DayOfWeek == rule.DayOfWeek {
			r.rules[i] = *rule
			return nil
		}
	}
	r.rules = append(r.rules, *rule)
	return nil
}
