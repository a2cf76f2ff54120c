package admin

import (
	"errors"
	"testing"
	"time"

	"pawbooker/models"
)

type stubBlackoutRepo struct {
	blackouts []models.Blackout
}

func (r *stubBlackoutRepo) FindInRange(from, to time.Time) ([]models.Blackout, error) {
	var out []models.Blackout
	for _, b := range r.blackouts {
		if b.StartDateTime.Before(to) && b.EndDateTime.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBlackoutRepo) GetAll() ([]models.Blackout, error) {
	return r.blackouts, nil
}

func (r *stubBlackoutRepo) Create(b *models.Blackout) error {
	r.blackouts = append(r.blackouts, *b)
	return nil
}

func (r *stubBlackoutRepo) Delete(id string) error {
	for i, b := range r.blackouts {
		if b.ID == id {
			r.blackouts = append(r.blackouts[:i], r.blackouts[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubRuleRepo struct {
	rules []models.AvailabilityRule
}

func (r *stubRuleRepo) FindEnabled() ([]models.AvailabilityRule, error) {
	var out []models.AvailabilityRule
	for _, rule := range r.rules {
		if rule.Enabled {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r *stubRuleRepo) GetAll() ([]models.AvailabilityRule, error) {
	return r.rules, nil
}

func (r *stubRuleRepo) Upsert(rule *models.AvailabilityRule) error {
	for i := range r.rules {
		if r.rules[i].DayOfWeek == rule.DayOfWeek {
			r.rules[i] = *rule
			return nil
		}
	}
	r.rules = append(r.rules, *rule)
	return nil
}

type stubServiceRepo struct {
	services []models.Service
}

func (r *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			return &r.services[i], nil
		}
	}
	return nil, nil
}

func (r *stubServiceRepo) GetAll() ([]models.Service, error) {
	return r.services, nil
}

func (r *stubServiceRepo) Create(s *models.Service) error {
	r.services = append(r.services, *s)
	return nil
}

func newTestAdmin() (*DefaultAdminService, *stubBlackoutRepo, *stubRuleRepo) {
	blackouts := &stubBlackoutRepo{}
	rules := &stubRuleRepo{}
	return &DefaultAdminService{
		BlackoutRepo: blackouts,
		RuleRepo:     rules,
		ServiceRepo:  &stubServiceRepo{},
	}, blackouts, rules
}

func TestCreateBlackout(t *testing.T) {
	svc, repo, _ := newTestAdmin()

	start := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	blackout, err := svc.CreateBlackout(start, end, "staff retreat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blackout.ID == "" {
		t.Error("want a generated id")
	}
	if len(repo.blackouts) != 1 {
		t.Fatalf("want 1 stored blackout, got %d", len(repo.blackouts))
	}
}

func TestCreateBlackout_RejectsOverlap(t *testing.T) {
	svc, _, _ := newTestAdmin()

	start := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreateBlackout(start, start.AddDate(0, 0, 3), "first"); err != nil {
		t.Fatalf("first blackout: %v", err)
	}

	// Intersects the last day of the stored span.
	if _, err := svc.CreateBlackout(start.AddDate(0, 0, 2), start.AddDate(0, 0, 5), "second"); !errors.Is(err, ErrBlackoutOverlap) {
		t.Fatalf("want ErrBlackoutOverlap, got %v", err)
	}

	// Touching spans share no instant and are accepted.
	if _, err := svc.CreateBlackout(start.AddDate(0, 0, 3), start.AddDate(0, 0, 4), "adjacent"); err != nil {
		t.Fatalf("adjacent blackout: %v", err)
	}
}

func TestCreateBlackout_InvalidSpan(t *testing.T) {
	svc, _, _ := newTestAdmin()

	at := time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreateBlackout(at, at, "empty"); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("want ErrInvalidSpan, got %v", err)
	}
}

func TestUpsertRule(t *testing.T) {
	svc, _, repo := newTestAdmin()

	rule := &models.AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Enabled: true}
	if err := svc.UpsertRule(rule); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second upsert for the same weekday replaces, not appends.
	rule.EndTime = "18:00"
	if err := svc.UpsertRule(rule); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if len(repo.rules) != 1 {
		t.Fatalf("want 1 rule, got %d", len(repo.rules))
	}
	if repo.rules[0].EndTime != "18:00" {
		t.Errorf("endTime: want 18:00, got %s", repo.rules[0].EndTime)
	}
}

func TestUpsertRule_Validation(t *testing.T) {
	svc, _, _ := newTestAdmin()

	cases := []struct {
		name string
		rule models.AvailabilityRule
	}{
		{"day out of range", models.AvailabilityRule{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}},
		{"bad start clock", models.AvailabilityRule{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}},
		{"bad end clock", models.AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "25:00"}},
		{"end before start", models.AvailabilityRule{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}},
	}
	for _, tc := range cases {
		rule := tc.rule
		if err := svc.UpsertRule(&rule); !errors.Is(err, ErrInvalidSpan) {
			t.Errorf("%s: want ErrInvalidSpan, got %v", tc.name, err)
		}
	}
}

func TestCreateService(t *testing.T) {
	svc, _, _ := newTestAdmin()

	service := &models.Service{Type: "walk", Name: "Dog Walk", Capacity: 3, DurationMins: 60}
	if err := svc.CreateService(service); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if service.ID == "" {
		t.Error("want a generated id")
	}

	if err := svc.CreateService(&models.Service{Type: "walk", Capacity: 0}); !errors.Is(err, ErrInvalidSpan) {
		t.Fatalf("want ErrInvalidSpan for zero capacity, got %v", err)
	}
}
