package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
)

// UseCase use case выдачи дат, доступных для бронирования
type UseCase struct {
	calendarRepo    CalendarRepository
	capacityTracker CapacityTracker
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	capacityTracker CapacityTracker,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo:    calendarRepo,
		capacityTracker: capacityTracker,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute возвращает даты, открытые для бронирования с учетом области
// видимости категории. Даты с исчерпанной вместимостью в выдачу не попадают:
// клиенту нельзя предлагать день, на который уже не записаться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: category=%v", req.CategoryID)

	fromDate := truncateToDay(uc.timeProvider.Now())

	dates, err := uc.calendarRepo.ListEligible(ctx, req.CategoryID, fromDate)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to list dates: %v", err)
		return nil, fmt.Errorf("%w: list eligible dates: %v", ErrInternal, err)
	}

	resp := &Response{
		Dates: make([]AvailableDate, 0, len(dates)),
	}

	for _, date := range dates {
		remaining, err := uc.capacityTracker.RemainingFor(ctx, date)
		if err != nil {
			uc.logger.Error("GetAvailableDates: failed to compute remaining for date id=%d: %v",
				date.ID, err)
			return nil, fmt.Errorf("%w: remaining capacity: %v", ErrInternal, err)
		}

		if remaining == 0 {
			continue
		}

		resp.Dates = append(resp.Dates, AvailableDate{
			ID:              date.ID,
			Date:            date.Date.Format(domain.DateFormat),
			CategoryID:      date.CategoryID,
			MaxAppointments: date.MaxAppointments,
			Remaining:       remaining,
		})
	}

	uc.logger.Info("GetAvailableDates: %d of %d dates bookable", len(resp.Dates), len(dates))
	return resp, nil
}

// truncateToDay обнуляет время, оставляя только календарный день
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
