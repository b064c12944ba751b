package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
)

// UseCase use case выдачи открытых слотов на дату
type UseCase struct {
	calendarRepo CalendarRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает доступные слоты на дату, уже разрешённые по области
// видимости категории. Дата без активной календарной записи отдаёт пустой
// список: день, которого нет в календаре, не предлагает слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, category=%v",
		req.Date.Format(domain.DateFormat), req.CategoryID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := truncateToDay(req.Date)

	entry, err := uc.calendarRepo.ResolveForDate(ctx, date, req.CategoryID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			uc.logger.Info("GetAvailableSlots: no calendar entry for date %s",
				date.Format(domain.DateFormat))
			return &Response{Slots: []AvailableSlot{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve date: %v", err)
		return nil, fmt.Errorf("%w: resolve date: %v", ErrInternal, err)
	}

	if !entry.IsAvailable {
		uc.logger.Info("GetAvailableSlots: date %s is closed for booking",
			date.Format(domain.DateFormat))
		return &Response{Slots: []AvailableSlot{}}, nil
	}

	// Прошедший день слотов не предлагает, как и выдача доступных дат
	if entry.IsPast(uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past",
			date.Format(domain.DateFormat))
		return &Response{Slots: []AvailableSlot{}}, nil
	}

	slots, err := uc.slotRepo.ListByDate(ctx, slotRepo.ListFilter{
		Date:          date,
		CategoryID:    req.CategoryID,
		OnlyAvailable: true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: list slots: %v", ErrInternal, err)
	}

	resp := &Response{
		Slots: make([]AvailableSlot, 0, len(slots)),
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, AvailableSlot{
			ID:          slot.ID,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			ExtraPrice:  slot.ExtraPrice,
			IsAvailable: slot.IsAvailable,
		})
	}

	uc.logger.Info("GetAvailableSlots: %d slots available", len(resp.Slots))
	return resp, nil
}

// truncateToDay обнуляет время, оставляя только календарный день
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
