package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
)

// Tracker следит за вместимостью календарных дат (CapacityTracker).
// Вместимость учитывается по дате целиком, не по слоту: remaining =
// max_appointments − число записей на дату во всех статусах, кроме cancelled.
type Tracker struct {
	calendarRepo    CalendarRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewTracker создает новый экземпляр трекера вместимости
func NewTracker(
	calendarRepo CalendarRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *Tracker {
	return &Tracker{
		calendarRepo:    calendarRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Remaining возвращает остаток вместимости даты (не меньше нуля) и
// разрешённую календарную запись. Запись для категории имеет приоритет
// над глобальной.
func (t *Tracker) Remaining(ctx context.Context, date time.Time, categoryID *int64) (int, *domain.CalendarDate, error) {
	entry, err := t.calendarRepo.ResolveForDate(ctx, date, categoryID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			return 0, nil, ErrDateNotFound
		}
		return 0, nil, fmt.Errorf("%w: Remaining - resolve date: %v", ErrInternal, err)
	}

	remaining, err := t.RemainingFor(ctx, entry)
	if err != nil {
		return 0, nil, err
	}

	return remaining, entry, nil
}

// RemainingFor возвращает остаток вместимости уже разрешённой календарной
// записи (не меньше нуля). Вместимость могли уменьшить после создания
// записей, поэтому разница прижимается к нулю.
func (t *Tracker) RemainingFor(ctx context.Context, entry *domain.CalendarDate) (int, error) {
	count, err := t.appointmentRepo.CountActiveByDate(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("%w: RemainingFor - count appointments: %v", ErrInternal, err)
	}

	remaining := entry.MaxAppointments - count
	if remaining < 0 {
		remaining = 0
	}

	return remaining, nil
}

// Reserve проверяет вместимость даты перед созданием записи.
// Должен вызываться внутри сериализуемой транзакции: ResolveForDate в этом
// случае берёт блокировку FOR UPDATE на календарной строке, и конкурентные
// резервирования одной даты выстраиваются последовательно. Паттерн
// "прочитал — проверил — вставил" без блокировки здесь недопустим.
func (t *Tracker) Reserve(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	entry, err := t.calendarRepo.ResolveForDate(ctx, date, categoryID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			t.logger.Warn("Reserve: no calendar entry for date %s, category %v",
				date.Format(domain.DateFormat), categoryID)
			return nil, ErrDateNotFound
		}
		t.logger.Error("Reserve: resolve date error: %v", err)
		return nil, fmt.Errorf("%w: Reserve - resolve date: %v", ErrInternal, err)
	}

	if !entry.IsAvailable {
		t.logger.Warn("Reserve: date %s (entry id=%d) is closed for booking",
			date.Format(domain.DateFormat), entry.ID)
		return nil, ErrDateNotAvailable
	}

	count, err := t.appointmentRepo.CountActiveByDate(ctx, entry)
	if err != nil {
		t.logger.Error("Reserve: count appointments error: %v", err)
		return nil, fmt.Errorf("%w: Reserve - count appointments: %v", ErrInternal, err)
	}

	if count >= entry.MaxAppointments {
		t.logger.Warn("Reserve: capacity exhausted for date %s (entry id=%d): %d/%d",
			date.Format(domain.DateFormat), entry.ID, count, entry.MaxAppointments)
		return nil, ErrCapacityExhausted
	}

	return entry, nil
}
