package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
)

// CalendarRepository интерфейс репозитория календарных дат
type CalendarRepository interface {
	ResolveForDate(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	ListByDate(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
