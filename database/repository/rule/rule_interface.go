package ruleRepo

import "pawbooker/models"

// RuleRepository defines access to the weekly availability rules. The engine
// only ever reads rules; writes belong to the admin surface.
type RuleRepository interface {
	FindEnabled() ([]models.AvailabilityRule, error)
	GetAll() ([]models.AvailabilityRule, error)
	Upsert(rule *models.AvailabilityRule) error
}
