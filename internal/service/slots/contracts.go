package slots

import (
	"context"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/catalogservice"
)

// SlotRepository интерфейс репозитория временных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	ListByDate(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, id int64, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	Delete(ctx context.Context, id int64) error
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetCategory(ctx context.Context, categoryID int64) (*catalogservice.Category, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
