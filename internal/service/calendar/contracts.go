package calendar

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/catalogservice"
)

// CalendarRepository интерфейс репозитория календарных дат
type CalendarRepository interface {
	Create(ctx context.Context, date *domain.CalendarDate) (*domain.CalendarDate, error)
	GetByID(ctx context.Context, id int64) (*domain.CalendarDate, error)
	ListEligible(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error)
	Update(ctx context.Context, id int64, isAvailable bool, maxAppointments int) (*domain.CalendarDate, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetCategory(ctx context.Context, categoryID int64) (*catalogservice.Category, error)
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
