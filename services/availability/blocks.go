package availability

import (
	"time"

	"pawbooker/models"
)

// BookingBlocks reduces active bookings to capacity-exceeding blocked
// windows. Bookings are grouped by their exact (start, end) pair; a group
// only blocks once its size reaches the service capacity, and the emitted
// window is padded by the service buffer on both sides. Groups below
// capacity stay open for further bookings of the same window.
//
// Capacity is deliberately matched on identical windows, not arbitrary
// overlap; see the design notes on variable-length services.
func BookingBlocks(service *models.Service, bookings []models.Booking, now time.Time) []models.TimeInterval {
	type slotKey struct {
		start int64
		end   int64
	}

	groups := make(map[slotKey][]models.Booking)
	for _, b := range bookings {
		// Lapsed holds are logically absent even before the sweep runs.
		if b.HoldExpired(now) {
			continue
		}
		key := slotKey{b.StartDateTime.UnixNano(), b.EndDateTime.UnixNano()}
		groups[key] = append(groups[key], b)
	}

	buffer := time.Duration(service.BufferMins) * time.Minute
	var blocked []models.TimeInterval
	for _, group := range groups {
		if len(group) < service.Capacity {
			continue
		}
		first := group[0]
		blocked = append(blocked, models.TimeInterval{
			Start: first.StartDateTime.Add(-buffer),
			End:   first.EndDateTime.Add(buffer),
		})
	}

	return Merge(blocked)
}

// BlackoutBlocks converts stored blackouts to blocked windows verbatim.
// Blackouts apply to every service regardless of capacity.
func BlackoutBlocks(blackouts []models.Blackout) []models.TimeInterval {
	intervals := make([]models.TimeInterval, 0, len(blackouts))
	for _, b := range blackouts {
		intervals = append(intervals, models.TimeInterval{
			Start: b.StartDateTime,
			End:   b.EndDateTime,
		})
	}
	return intervals
}
