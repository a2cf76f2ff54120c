package availability

import (
	"time"

	"pawbooker/models"
	"pawbooker/utils"

	"go.uber.org/zap"
)

// searchHorizonDays bounds the FirstOpenSlot scan.
const searchHorizonDays = 30

// OpenIntervals returns the bookable intervals for a service over [from, to):
// the weekly rules expanded over the window, minus the merged union of
// capacity-exceeding booking windows and blackouts. The result is sorted
// ascending and never overlapping; empty is a valid answer (closed or fully
// booked).
func (e *DefaultEngine) OpenIntervals(serviceID string, from, to time.Time) ([]models.TimeInterval, error) {
	if !to.After(from) {
		return nil, newError(CodeInvalidInterval, "query window end must be after start")
	}
	from, to = from.UTC(), to.UTC()

	service, err := e.ServiceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, newError(CodeNotFound, "service %s not found", serviceID)
	}

	rules, err := e.RuleRepo.FindEnabled()
	if err != nil {
		return nil, err
	}
	ruleIntervals := ExpandRules(rules, from, to, e.location())
	if len(ruleIntervals) == 0 {
		return nil, nil
	}

	now := time.Now().UTC()
	bookings, err := e.BookingRepo.FindActiveInRange(serviceID, from, to, now)
	if err != nil {
		return nil, err
	}
	blackouts, err := e.BlackoutRepo.FindInRange(from, to)
	if err != nil {
		return nil, err
	}

	blocks := Merge(append(BookingBlocks(service, bookings, now), BlackoutBlocks(blackouts)...))
	return Subtract(ruleIntervals, blocks), nil
}

// FirstOpenSlot scans open intervals over a 30-day horizon starting at from
// and returns the earliest instant at which a booking of durationMins fits.
// A nil result means the horizon was exhausted without a fit; it is not an
// error.
func (e *DefaultEngine) FirstOpenSlot(serviceID string, durationMins int, from time.Time) (*time.Time, error) {
	if durationMins <= 0 {
		return nil, newError(CodeInvalidInterval, "duration must be positive, got %d", durationMins)
	}
	if from.IsZero() {
		from = time.Now()
	}
	from = from.UTC()
	to := from.AddDate(0, 0, searchHorizonDays)

	open, err := e.OpenIntervals(serviceID, from, to)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(durationMins) * time.Minute
	for _, interval := range open {
		// An interval may begin before the search start; the slot cannot.
		start := interval.Start
		if start.Before(from) {
			start = from
		}
		if !start.Add(duration).After(interval.End) {
			utils.GetLogger().Debug("first open slot found",
				zap.String("serviceID", serviceID),
				zap.Time("start", start))
			return &start, nil
		}
	}
	return nil, nil
}
