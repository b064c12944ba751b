package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/HSP-ScheduleService/internal/service/capacity"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// UseCase use case для создания записи на обслуживание
type UseCase struct {
	appointmentRepo AppointmentRepository
	slotRepo        SlotRepository
	capacityTracker CapacityTracker
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	slotRepo SlotRepository,
	capacityTracker CapacityTracker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		capacityTracker: capacityTracker,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Резервирование вместимости и вставка записи выполняются в одной
// сериализуемой транзакции: проверка остатка и запись нового appointment
// не должны разъезжаться под конкурентной нагрузкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, date=%s, time=%s, category=%v",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.CategoryID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата записи не может быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	date := truncateToDay(req.Date)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Резервируем вместимость даты. Внутри транзакции трекер берёт
		// блокировку FOR UPDATE на календарной строке, конкурентные
		// бронирования одной даты выстраиваются последовательно.
		entry, err := uc.capacityTracker.Reserve(txCtx, date, req.CategoryID)
		if err != nil {
			switch {
			case errors.Is(err, capacity.ErrDateNotFound), errors.Is(err, capacity.ErrDateNotAvailable):
				uc.logger.Warn("CreateAppointment: date %s not bookable: %v",
					date.Format(domain.DateFormat), err)
				return ErrDateNotBookable
			case errors.Is(err, capacity.ErrCapacityExhausted):
				uc.logger.Warn("CreateAppointment: capacity exhausted for date %s",
					date.Format(domain.DateFormat))
				return ErrCapacityExhausted
			default:
				uc.logger.Error("CreateAppointment: reserve failed: %v", err)
				return fmt.Errorf("%w: reserve capacity: %v", ErrInternal, err)
			}
		}

		uc.logger.Info("CreateAppointment: reserved capacity on calendar entry id=%d", entry.ID)

		// 3.2. Находим выбранный слот среди доступных на дату.
		// Слот — шаблон, не живая ссылка: время и доплата копируются в запись.
		slot, err := uc.resolveSlot(txCtx, date, req.CategoryID, req.StartTime)
		if err != nil {
			return err
		}

		// 3.3. Создаем запись с денормализацией цены (доплата за слот входит в итог)
		appt := &domain.Appointment{
			UserID:             req.UserID,
			ServiceDescription: req.ServiceDescription,
			Date:               date,
			StartTime:          req.StartTime,
			Location: domain.Location{
				AddressLine: req.Location.AddressLine,
				City:        req.Location.City,
				PostalCode:  req.Location.PostalCode,
			},
			Price:  req.BasePrice + slot.ExtraPrice,
			Status: domain.StatusPending,
			Notes:  req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:                 result.ID,
		UserID:             result.UserID,
		ServiceDescription: result.ServiceDescription,
		Date:               result.Date,
		StartTime:          result.StartTime,
		Location: Location{
			AddressLine: result.Location.AddressLine,
			City:        result.Location.City,
			PostalCode:  result.Location.PostalCode,
		},
		Price:     result.Price,
		Status:    string(result.Status),
		Notes:     result.Notes,
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

// resolveSlot ищет доступный слот на дату с указанным временем начала.
// Слоты отсортированы по start_time, берём первый совпавший.
func (uc *UseCase) resolveSlot(ctx context.Context, date time.Time, categoryID *int64, startTime types.TimeString) (*domain.TimeSlot, error) {
	slots, err := uc.slotRepo.ListByDate(ctx, slotRepo.ListFilter{
		Date:          date,
		CategoryID:    categoryID,
		OnlyAvailable: true,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: list slots: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.StartTime == startTime {
			return slot, nil
		}
	}

	uc.logger.Warn("CreateAppointment: no available slot at %s on %s",
		startTime, date.Format(domain.DateFormat))
	return nil, ErrSlotNotBookable
}

// truncateToDay обнуляет время, оставляя только календарный день
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
