package models

// AvailabilityRule defines the recurring weekly open hours for one weekday.
// StartTime/EndTime are local HH:mm strings in the business timezone.
// At most one enabled rule per weekday is expected.
type AvailabilityRule struct {
	DayOfWeek int    `bson:"day_of_week" json:"dayOfWeek"` // 0-6, Sunday = 0
	StartTime string `bson:"start_time" json:"startTime" binding:"required"` // e.g., "09:00"
	EndTime   string `bson:"end_time" json:"endTime" binding:"required"`     // e.g., "17:00"
	Enabled   bool   `bson:"enabled" json:"enabled"`
}
