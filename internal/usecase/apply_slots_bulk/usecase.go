package apply_slots_bulk

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

// UseCase use case массового применения шаблона слота по датам
type UseCase struct {
	slotService  SlotService
	calendarRepo CalendarRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotService SlotService,
	calendarRepo CalendarRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotService:  slotService,
		calendarRepo: calendarRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет шаблон слота к каждой целевой дате независимо.
// Это батч с частичным отказом, не транзакция: отказ одной даты не
// прерывает остальные, каждый исход попадает в результат. Пустой отбор
// целевых дат — ошибка пользователя (ErrNoTargetDates), а не тихий успех.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplySlotsBulk: category=%v, window=%s-%s, targets=%d",
		req.CategoryID, req.StartTime, req.EndTime, len(req.TargetDates))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplySlotsBulk: validation failed: %v", err)
		return nil, err
	}

	targets, err := uc.resolveTargetDates(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(targets) == 0 {
		uc.logger.Warn("ApplySlotsBulk: no target dates resolved")
		return nil, ErrNoTargetDates
	}

	resp := &Response{
		Succeeded: make([]string, 0, len(targets)),
		Failed:    make([]FailedDate, 0),
	}

	for _, date := range targets {
		dateStr := date.Format(domain.DateFormat)

		_, err := uc.slotService.AddSlot(ctx, &slotModels.AddSlotRequest{
			Date:        date,
			CategoryID:  req.CategoryID,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			IsAvailable: req.IsAvailable,
			ExtraPrice:  req.ExtraPrice,
		})
		if err != nil {
			uc.logger.Warn("ApplySlotsBulk: date %s failed: %v", dateStr, err)
			resp.Failed = append(resp.Failed, FailedDate{
				Date:   dateStr,
				Reason: err.Error(),
			})
			continue
		}

		resp.Succeeded = append(resp.Succeeded, dateStr)
	}

	uc.logger.Info("ApplySlotsBulk: %d succeeded, %d failed",
		len(resp.Succeeded), len(resp.Failed))
	return resp, nil
}

// resolveTargetDates возвращает явно переданные даты либо, если отбор пуст,
// все даты, открытые для бронирования в области видимости категории шаблона
func (uc *UseCase) resolveTargetDates(ctx context.Context, req *Request) ([]time.Time, error) {
	if len(req.TargetDates) > 0 {
		targets := make([]time.Time, 0, len(req.TargetDates))
		for _, d := range req.TargetDates {
			targets = append(targets, truncateToDay(d))
		}
		return targets, nil
	}

	fromDate := truncateToDay(uc.timeProvider.Now())

	dates, err := uc.calendarRepo.ListEligible(ctx, req.CategoryID, fromDate)
	if err != nil {
		uc.logger.Error("ApplySlotsBulk: failed to list eligible dates: %v", err)
		return nil, fmt.Errorf("%w: list eligible dates: %v", ErrInternal, err)
	}

	targets := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		targets = append(targets, date.Date)
	}

	return targets, nil
}

func validateRequest(req *Request) error {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateTimeRange(req.StartTime, req.EndTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.ExtraPrice < 0 {
		return fmt.Errorf("%w: extraPrice must not be negative", ErrInvalidInput)
	}
	return nil
}

// truncateToDay обнуляет время, оставляя только календарный день
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
