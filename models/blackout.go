package models

import "time"

// Blackout is an administrator-defined span during which no service is
// bookable, independent of capacity.
type Blackout struct {
	ID            string    `bson:"id" json:"id"`
	StartDateTime time.Time `bson:"start_date_time" json:"startDateTime"` // UTC instant
	EndDateTime   time.Time `bson:"end_date_time" json:"endDateTime"`     // UTC instant
	Reason        string    `bson:"reason" json:"reason"`                 // e.g., "Christmas holidays"
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
