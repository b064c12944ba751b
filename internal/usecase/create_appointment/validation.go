package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceDescription) == "" {
		return fmt.Errorf("%w: serviceDescription is required", ErrInvalidInput)
	}
	if len(req.ServiceDescription) > domain.MaxServiceDescLen {
		return fmt.Errorf("%w: serviceDescription exceeds %d characters", ErrInvalidInput, domain.MaxServiceDescLen)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Location.AddressLine) == "" {
		return fmt.Errorf("%w: location addressLine is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Location.City) == "" {
		return fmt.Errorf("%w: location city is required", ErrInvalidInput)
	}

	if req.BasePrice < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
