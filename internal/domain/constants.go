package domain

import (
	"fmt"

	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// Business validation constants
const (
	MinMaxAppointments = 1
	MaxMaxAppointments = 500
	MaxNotesLength     = 500
	MaxServiceDescLen  = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не удерживающие вместимость даты
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, удерживающие вместимость даты
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}

// ValidateTimeRange проверяет, что конец окна строго позже начала.
// Слоты не пересекают полночь, поэтому достаточно сравнения в рамках дня.
func ValidateTimeRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !end.IsAfter(start) {
		return fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return nil
}
