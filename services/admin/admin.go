package admin

import (
	"errors"
	"fmt"
	"time"

	blackoutRepo "pawbooker/database/repository/blackout"
	ruleRepo "pawbooker/database/repository/rule"
	serviceRepo "pawbooker/database/repository/service"

	"pawbooker/models"
	"pawbooker/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrBlackoutOverlap is returned when a new blackout intersects one
	// already stored. Overlapping blackouts are rejected at this boundary;
	// the engine treats whatever is stored as an unconditional block.
	ErrBlackoutOverlap = errors.New("blackout overlaps an existing blackout")
	// ErrInvalidSpan is returned for malformed time spans or rules.
	ErrInvalidSpan = errors.New("invalid time span")
)

// AdminService manages the business schedule: blackouts, weekly rules and
// the service catalog.
type AdminService interface {
	CreateBlackout(start, end time.Time, reason string) (*models.Blackout, error)
	DeleteBlackout(id string) error
	ListBlackouts() ([]models.Blackout, error)
	UpsertRule(rule *models.AvailabilityRule) error
	ListRules() ([]models.AvailabilityRule, error)
	CreateService(service *models.Service) error
}

// DefaultAdminService implements AdminService.
type DefaultAdminService struct {
	BlackoutRepo blackoutRepo.BlackoutRepository
	RuleRepo     ruleRepo.RuleRepository
	ServiceRepo  serviceRepo.ServiceRepository
}

// CreateBlackout stores a new blackout span, rejecting overlaps with any
// existing one.
func (s *DefaultAdminService) CreateBlackout(start, end time.Time, reason string) (*models.Blackout, error) {
	start, end = start.UTC(), end.UTC()
	if !end.After(start) {
		return nil, fmt.Errorf("%w: blackout end must be after start", ErrInvalidSpan)
	}

	existing, err := s.BlackoutRepo.FindInRange(start, end)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrBlackoutOverlap
	}

	blackout := &models.Blackout{
		ID:            uuid.New().String(),
		StartDateTime: start,
		EndDateTime:   end,
		Reason:        reason,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.BlackoutRepo.Create(blackout); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("blackout created",
		zap.String("blackoutID", blackout.ID),
		zap.Time("start", start),
		zap.Time("end", end))
	return blackout, nil
}

// DeleteBlackout removes a blackout by id.
func (s *DefaultAdminService) DeleteBlackout(id string) error {
	return s.BlackoutRepo.Delete(id)
}

// ListBlackouts returns every stored blackout.
func (s *DefaultAdminService) ListBlackouts() ([]models.Blackout, error) {
	return s.BlackoutRepo.GetAll()
}

// UpsertRule validates and stores the weekly rule for one weekday.
func (s *DefaultAdminService) UpsertRule(rule *models.AvailabilityRule) error {
	if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be 0-6, got %d", ErrInvalidSpan, rule.DayOfWeek)
	}
	start, err := time.Parse("15:04", rule.StartTime)
	if err != nil {
		return fmt.Errorf("%w: startTime %q is not HH:mm", ErrInvalidSpan, rule.StartTime)
	}
	end, err := time.Parse("15:04", rule.EndTime)
	if err != nil {
		return fmt.Errorf("%w: endTime %q is not HH:mm", ErrInvalidSpan, rule.EndTime)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: rule end must be after start", ErrInvalidSpan)
	}

	if err := s.RuleRepo.Upsert(rule); err != nil {
		return err
	}
	utils.GetLogger().Info("availability rule upserted",
		zap.Int("dayOfWeek", rule.DayOfWeek),
		zap.Bool("enabled", rule.Enabled))
	return nil
}

// ListRules returns every stored rule.
func (s *DefaultAdminService) ListRules() ([]models.AvailabilityRule, error) {
	return s.RuleRepo.GetAll()
}

// CreateService adds a service to the catalog.
func (s *DefaultAdminService) CreateService(service *models.Service) error {
	if service.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidSpan)
	}
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	service.CreatedAt = time.Now().UTC()
	return s.ServiceRepo.Create(service)
}
