package blackoutRepo

import (
	"time"

	"pawbooker/models"
)

// BlackoutRepository defines access to administrator-defined blackout spans.
type BlackoutRepository interface {
	// FindInRange returns blackouts whose span intersects [from, to).
	FindInRange(from, to time.Time) ([]models.Blackout, error)
	GetAll() ([]models.Blackout, error)
	Create(blackout *models.Blackout) error
	Delete(id string) error
}
