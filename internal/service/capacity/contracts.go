package capacity

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
)

// CalendarRepository интерфейс репозитория календарных дат
type CalendarRepository interface {
	ResolveForDate(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	CountActiveByDate(ctx context.Context, date *domain.CalendarDate) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
