package domain

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// TimeSlot represents a time-of-day window within a CalendarDate.
// CategoryID follows the same "nil = all categories" convention as CalendarDate.
// Slots never span midnight: EndTime must be strictly later than StartTime.
type TimeSlot struct {
	ID          int64
	Date        time.Time // календарный день, совпадает с CalendarDate.Date
	CategoryID  *int64
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	ExtraPrice  float64 // доплата за слот, >= 0

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGlobal returns true if the slot applies to all service categories
func (s *TimeSlot) IsGlobal() bool {
	return s.CategoryID == nil
}

// AppliesTo reports whether the slot is visible for the requested category
func (s *TimeSlot) AppliesTo(requestedCategoryID *int64) bool {
	return ScopeMatches(requestedCategoryID, s.CategoryID)
}

// ValidateTimeRange проверяет инвариант EndTime > StartTime
func (s *TimeSlot) ValidateTimeRange() error {
	return ValidateTimeRange(s.StartTime, s.EndTime)
}
