package domain

import "time"

// CalendarDate represents a day on which bookings may be accepted.
// CategoryID == nil means the date applies to bookings of any category.
// At most one active entry may exist per (date, categoryId) scope.
type CalendarDate struct {
	ID              int64
	Date            time.Time // календарный день, время обнулено
	CategoryID      *int64
	IsAvailable     bool
	MaxAppointments int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGlobal returns true if the date applies to all service categories
func (d *CalendarDate) IsGlobal() bool {
	return d.CategoryID == nil
}

// AppliesTo reports whether the date is visible for the requested category
// under the scope rule (see ScopeMatches)
func (d *CalendarDate) AppliesTo(requestedCategoryID *int64) bool {
	return ScopeMatches(requestedCategoryID, d.CategoryID)
}

// IsPast returns true if the day is strictly before today (relative to now)
func (d *CalendarDate) IsPast(now time.Time) bool {
	dateOnly := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, d.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
