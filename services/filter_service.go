package services

import (
	"strings"
	"time"

	"ticket-storefront/models"
)

// Date range buckets understood by the event filter.
const (
	DateRangeToday     = "today"
	DateRangeTomorrow  = "tomorrow"
	DateRangeThisWeek  = "this-week"
	DateRangeThisMonth = "this-month"
	DateRangeNextMonth = "next-month"
)

// CategoryAll is the sentinel that disables category filtering.
const CategoryAll = "All"

// EventFilter is the filter state. Zero values are no-ops: empty strings,
// a non-positive PriceMax and false flags exclude nothing.
type EventFilter struct {
	Search    string
	Category  string
	Location  string
	PriceMax  float64
	IsFree    bool
	IsOnline  bool
	DateRange string
}

// FilterEvents applies every active criterion with AND semantics and
// returns the passing subset in input order. The reference time is
// injected so date buckets are deterministic under test.
func FilterEvents(events []*models.Event, filter EventFilter, now time.Time) []*models.Event {
	var out []*models.Event
	for _, event := range events {
		if matchesFilter(event, filter, now) {
			out = append(out, event)
		}
	}
	return out
}

func matchesFilter(event *models.Event, filter EventFilter, now time.Time) bool {
	if filter.Search != "" && !matchesSearch(event, filter.Search) {
		return false
	}
	if filter.Category != "" && filter.Category != CategoryAll && event.Category != filter.Category {
		return false
	}
	if filter.Location != "" && event.Location != filter.Location {
		return false
	}
	if filter.PriceMax > 0 && !hasTierAtOrBelow(event, filter.PriceMax) {
		return false
	}
	if filter.IsFree && !hasFreeTier(event) {
		return false
	}
	if filter.IsOnline && !isOnlineLocation(event.Location) {
		return false
	}
	if filter.DateRange != "" && !inDateRange(event.Date, filter.DateRange, now) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match; any one of name,
// description or category matching is sufficient.
func matchesSearch(event *models.Event, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(event.Name), needle) ||
		strings.Contains(strings.ToLower(event.Description), needle) ||
		strings.Contains(strings.ToLower(event.Category), needle)
}

// hasTierAtOrBelow passes when ANY tier fits the ceiling; an event with
// one cheap and one expensive tier still passes a low ceiling.
func hasTierAtOrBelow(event *models.Event, ceiling float64) bool {
	for _, tt := range event.TicketTypes {
		if tt.Price <= ceiling {
			return true
		}
	}
	return false
}

func hasFreeTier(event *models.Event) bool {
	for _, tt := range event.TicketTypes {
		if tt.Price == 0 {
			return true
		}
	}
	return false
}

// isOnlineLocation is a heuristic over the location string; online-ness is
// not modeled in the data.
func isOnlineLocation(location string) bool {
	l := strings.ToLower(location)
	return strings.Contains(l, "online") ||
		strings.Contains(l, "virtual") ||
		strings.Contains(l, "livestream")
}

// inDateRange buckets use half-open intervals anchored at local midnight
// of the injected reference time.
func inDateRange(date time.Time, dateRange string, now time.Time) bool {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch dateRange {
	case DateRangeToday:
		start = midnight
		end = midnight.AddDate(0, 0, 1)
	case DateRangeTomorrow:
		start = midnight.AddDate(0, 0, 1)
		end = midnight.AddDate(0, 0, 2)
	case DateRangeThisWeek:
		// Extends through the coming Sunday.
		daysUntilSunday := (7 - int(midnight.Weekday())) % 7
		start = midnight
		end = midnight.AddDate(0, 0, daysUntilSunday+1)
	case DateRangeThisMonth:
		start = midnight
		end = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
	case DateRangeNextMonth:
		start = time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), now.Month()+2, 1, 0, 0, 0, 0, now.Location())
	default:
		// Unknown bucket excludes nothing.
		return true
	}

	return !date.Before(start) && date.Before(end)
}
