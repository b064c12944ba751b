package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	ListByDate(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error)
}

// CapacityTracker интерфейс трекера вместимости дат
type CapacityTracker interface {
	Reserve(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
