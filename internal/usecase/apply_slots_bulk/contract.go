package apply_slots_bulk

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

// SlotService интерфейс сервиса каталога слотов
type SlotService interface {
	AddSlot(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error)
}

// CalendarRepository интерфейс репозитория календарных дат
type CalendarRepository interface {
	ListEligible(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error)
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
