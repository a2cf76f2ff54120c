package availability

import (
	"time"

	"pawbooker/models"
)

// ExpandRules turns the weekly recurring schedule into concrete UTC intervals
// covering [from, to). One interval is produced per calendar day (in the
// business timezone) whose weekday has an enabled rule; days without a rule
// are closed. No rules at all means the business is closed every day, never
// open by default.
func ExpandRules(rules []models.AvailabilityRule, from, to time.Time, loc *time.Location) []models.TimeInterval {
	if len(rules) == 0 || !to.After(from) {
		return nil
	}

	byWeekday := make(map[int]models.AvailabilityRule, len(rules))
	for _, rule := range rules {
		if rule.Enabled {
			byWeekday[rule.DayOfWeek] = rule
		}
	}
	if len(byWeekday) == 0 {
		return nil
	}

	window := models.TimeInterval{Start: from, End: to}
	var intervals []models.TimeInterval

	// Walk local calendar days from the day containing `from` through the
	// day containing `to`. AddDate on local midnight keeps the walk correct
	// across DST transitions.
	day := startOfDay(from.In(loc))
	last := startOfDay(to.In(loc))
	for !day.After(last) {
		rule, ok := byWeekday[int(day.Weekday())]
		if ok {
			iv, ok := ruleIntervalForDay(rule, day, loc)
			if ok && Overlaps(iv, window) {
				intervals = append(intervals, iv)
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return intervals
}

// ruleIntervalForDay combines the rule's local HH:mm bounds with the calendar
// date and converts to UTC.
func ruleIntervalForDay(rule models.AvailabilityRule, day time.Time, loc *time.Location) (models.TimeInterval, bool) {
	startH, startM, ok := parseClock(rule.StartTime)
	if !ok {
		return models.TimeInterval{}, false
	}
	endH, endM, ok := parseClock(rule.EndTime)
	if !ok {
		return models.TimeInterval{}, false
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), startH, startM, 0, 0, loc).UTC()
	end := time.Date(day.Year(), day.Month(), day.Day(), endH, endM, 0, 0, loc).UTC()
	if !end.After(start) {
		return models.TimeInterval{}, false
	}
	return models.TimeInterval{Start: start, End: end}, true
}

// parseClock parses an "HH:mm" local time string.
func parseClock(s string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
