package models

import "time"

// TimeInterval represents a continuous block of time, half-open [Start, End).
// Instants are always UTC internally; callers render in local time.
type TimeInterval struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Duration returns the length of the interval.
func (ti TimeInterval) Duration() time.Duration {
	return ti.End.Sub(ti.Start)
}

// Contains reports whether the interval fully covers [start, end].
// Boundary matches are allowed.
func (ti TimeInterval) Contains(start, end time.Time) bool {
	return !ti.Start.After(start) && !ti.End.Before(end)
}
