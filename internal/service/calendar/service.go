package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
	catalogClient "github.com/m04kA/HSP-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/HSP-ScheduleService/internal/service/calendar/models"
)

// Service сервис управления календарными датами (CalendarStore)
type Service struct {
	calendarRepo  CalendarRepository
	catalogClient CatalogServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	calendarRepo CalendarRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:  calendarRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// AddDate создает календарную дату.
// Вторая активная запись для той же пары (дата, категория) отклоняется,
// вместимость меньше единицы отклоняется до обращения к хранилищу.
func (s *Service) AddDate(ctx context.Context, req *models.AddDateRequest) (*models.DateResponse, error) {
	s.logger.Info("AddDate: date=%s, category=%v, max=%d",
		req.Date.Format(domain.DateFormat), req.CategoryID, req.MaxAppointments)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.MaxAppointments < domain.MinMaxAppointments {
		s.logger.Warn("AddDate: invalid capacity %d", req.MaxAppointments)
		return nil, ErrInvalidCapacity
	}
	if req.MaxAppointments > domain.MaxMaxAppointments {
		return nil, fmt.Errorf("%w: max appointments exceeds %d", ErrInvalidInput, domain.MaxMaxAppointments)
	}

	// Проверяем существование категории в каталоге
	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	date := &domain.CalendarDate{
		Date:            truncateToDay(req.Date),
		CategoryID:      req.CategoryID,
		IsAvailable:     req.IsAvailable,
		MaxAppointments: req.MaxAppointments,
	}

	created, err := s.calendarRepo.Create(ctx, date)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDuplicateDate) {
			s.logger.Warn("AddDate: duplicate date %s for category %v",
				req.Date.Format(domain.DateFormat), req.CategoryID)
			return nil, ErrDuplicateDate
		}
		s.logger.Error("AddDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddDate: successfully created date id=%d", created.ID)
	return models.FromDomainDate(created), nil
}

// Update обновляет флаг доступности и вместимость даты
func (s *Service) Update(ctx context.Context, dateID int64, req *models.UpdateDateRequest) (*models.DateResponse, error) {
	s.logger.Info("Update: date id=%d, available=%t, max=%d", dateID, req.IsAvailable, req.MaxAppointments)

	if req.MaxAppointments < domain.MinMaxAppointments {
		s.logger.Warn("Update: invalid capacity %d for date id=%d", req.MaxAppointments, dateID)
		return nil, ErrInvalidCapacity
	}

	updated, err := s.calendarRepo.Update(ctx, dateID, req.IsAvailable, req.MaxAppointments)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			s.logger.Warn("Update: date id=%d not found", dateID)
			return nil, ErrDateNotFound
		}
		s.logger.Error("Update: repository error for date id=%d: %v", dateID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated date id=%d", dateID)
	return models.FromDomainDate(updated), nil
}

// Remove удаляет календарную дату.
// Слоты даты не удаляются каскадно: они остаются для аудита и становятся
// недостижимыми через выдачу доступных дат (задокументированное решение).
func (s *Service) Remove(ctx context.Context, dateID int64) error {
	s.logger.Info("Remove: date id=%d", dateID)

	if err := s.calendarRepo.Delete(ctx, dateID); err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			s.logger.Warn("Remove: date id=%d not found", dateID)
			return ErrDateNotFound
		}
		s.logger.Error("Remove: repository error for date id=%d: %v", dateID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: successfully removed date id=%d", dateID)
	return nil
}

// GetByID получает календарную дату по ID
func (s *Service) GetByID(ctx context.Context, dateID int64) (*models.DateResponse, error) {
	date, err := s.calendarRepo.GetByID(ctx, dateID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrDateNotFound) {
			return nil, ErrDateNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDate(date), nil
}

// ListEligible получает даты, открытые для бронирования.
// Прошедшие даты в выдачу не попадают, но остаются в хранилище для истории.
func (s *Service) ListEligible(ctx context.Context, req *models.ListEligibleRequest) (*models.DateListResponse, error) {
	fromDate := truncateToDay(s.timeProvider.Now())
	if req.FromDate != nil {
		fromDate = truncateToDay(*req.FromDate)
	}

	s.logger.Info("ListEligible: category=%v, from=%s", req.CategoryID, fromDate.Format(domain.DateFormat))

	dates, err := s.calendarRepo.ListEligible(ctx, req.CategoryID, fromDate)
	if err != nil {
		s.logger.Error("ListEligible: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEligible - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEligible: fetched %d dates", len(dates))
	return models.FromDomainDateList(dates), nil
}

// checkCategoryExists проверяет, что категория существует в каталоге.
// nil означает глобальную область видимости — проверка не нужна.
func (s *Service) checkCategoryExists(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	if _, err := s.catalogClient.GetCategory(ctx, *categoryID); err != nil {
		if errors.Is(err, catalogClient.ErrCategoryNotFound) {
			s.logger.Warn("checkCategoryExists: category id=%d not found", *categoryID)
			return ErrCategoryNotFound
		}
		s.logger.Error("checkCategoryExists: failed to get category id=%d: %v", *categoryID, err)
		return fmt.Errorf("%w: failed to get category: %v", ErrInternal, err)
	}

	return nil
}

// truncateToDay обнуляет время, оставляя только календарный день
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
