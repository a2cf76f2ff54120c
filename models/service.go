package models

import "time"

// Service represents a bookable pet-care service offered by the business.
type Service struct {
	ID             string    `bson:"id" json:"id"`
	Type           string    `bson:"type" json:"type"`                        // e.g., "BOARDING", "DAYCARE", "WALK_30"
	Name           string    `bson:"name" json:"name"`                        // e.g., "30-Minute Walk"
	Description    string    `bson:"description" json:"description"`
	Capacity       int       `bson:"capacity" json:"capacity"`                // max simultaneous bookings of one window
	BufferMins     int       `bson:"buffer_mins" json:"bufferMins"`           // padding around booked windows
	BasePriceCents int       `bson:"base_price_cents" json:"basePriceCents"`
	DurationMins   int       `bson:"duration_mins" json:"durationMins"`       // 0 for variable-length services (boarding, daycare)
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
