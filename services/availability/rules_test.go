package availability

import (
	"testing"
	"time"

	"pawbooker/models"
)

func torontoLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		t.Fatalf("failed to load America/Toronto: %v", err)
	}
	return loc
}

func TestExpandRules_MondayRuleConvertsToUTC(t *testing.T) {
	loc := torontoLoc(t)
	rules := []models.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Enabled: true},
	}

	// 2027-01-04 is a Monday; Toronto is UTC-5 in January.
	from := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC)

	got := ExpandRules(rules, from, to, loc)
	if len(got) != 1 {
		t.Fatalf("want 1 interval, got %d: %v", len(got), got)
	}
	wantStart := time.Date(2027, 1, 4, 14, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2027, 1, 4, 22, 0, 0, 0, time.UTC)
	if !got[0].Start.Equal(wantStart) {
		t.Errorf("start: want %v, got %v", wantStart, got[0].Start)
	}
	if !got[0].End.Equal(wantEnd) {
		t.Errorf("end: want %v, got %v", wantEnd, got[0].End)
	}
	if got[0].Duration() != 8*time.Hour {
		t.Errorf("duration: want 8h, got %v", got[0].Duration())
	}
}

func TestExpandRules_NoRulesMeansClosed(t *testing.T) {
	from := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	if got := ExpandRules(nil, from, to, torontoLoc(t)); len(got) != 0 {
		t.Fatalf("want no intervals without rules, got %v", got)
	}
}

func TestExpandRules_DisabledRuleProducesNothing(t *testing.T) {
	rules := []models.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Enabled: false},
	}
	from := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	if got := ExpandRules(rules, from, to, torontoLoc(t)); len(got) != 0 {
		t.Fatalf("want no intervals for disabled rule, got %v", got)
	}
}

func TestExpandRules_DaysWithoutRuleAreClosed(t *testing.T) {
	loc := torontoLoc(t)
	rules := []models.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Enabled: true},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "16:00", Enabled: true},
	}

	// Full week starting Monday 2027-01-04: expect Monday and Wednesday only.
	from := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	got := ExpandRules(rules, from, to, loc)
	if len(got) != 2 {
		t.Fatalf("want 2 intervals, got %d: %v", len(got), got)
	}
	if wd := got[0].Start.In(loc).Weekday(); wd != time.Monday {
		t.Errorf("first interval weekday: want Monday, got %v", wd)
	}
	if wd := got[1].Start.In(loc).Weekday(); wd != time.Wednesday {
		t.Errorf("second interval weekday: want Wednesday, got %v", wd)
	}
}

func TestExpandRules_WindowOutsideRuleDay(t *testing.T) {
	loc := torontoLoc(t)
	rules := []models.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", Enabled: true},
	}

	// Tuesday-only window; the Monday rule contributes nothing.
	from := time.Date(2027, 1, 5, 5, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 6, 5, 0, 0, 0, time.UTC)

	if got := ExpandRules(rules, from, to, loc); len(got) != 0 {
		t.Fatalf("want no intervals, got %v", got)
	}
}

func TestExpandRules_InvalidClockStringSkipped(t *testing.T) {
	rules := []models.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "nine", EndTime: "17:00", Enabled: true},
	}
	from := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	if got := ExpandRules(rules, from, to, torontoLoc(t)); len(got) != 0 {
		t.Fatalf("want no intervals for malformed rule, got %v", got)
	}
}
