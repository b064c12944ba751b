package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
	catalogClient "github.com/m04kA/HSP-ScheduleService/internal/integrations/catalogservice"
	"github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

// Service сервис каталога временных слотов (SlotCatalog)
type Service struct {
	slotRepo      SlotRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:      slotRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// AddSlot создает слот. Окно с endTime <= startTime отклоняется и не
// сохраняется. Пересечение с другими слотами НЕ проверяется — пересекающиеся
// слоты разрешены и остаются на совести администратора.
func (s *Service) AddSlot(ctx context.Context, req *models.AddSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("AddSlot: date=%s, category=%v, window=%s-%s",
		req.Date.Format(domain.DateFormat), req.CategoryID, req.StartTime, req.EndTime)

	if err := validateAddSlot(req); err != nil {
		s.logger.Warn("AddSlot: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkCategoryExists(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	slot := &domain.TimeSlot{
		Date:        truncateToDay(req.Date),
		CategoryID:  req.CategoryID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
		ExtraPrice:  req.ExtraPrice,
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("AddSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// ListForDate получает слоты на дату в детерминированном порядке
// (start_time ASC). Клиентская выдача показывает только доступные слоты,
// административная — все.
func (s *Service) ListForDate(ctx context.Context, req *models.ListForDateRequest) (*models.SlotListResponse, error) {
	s.logger.Info("ListForDate: date=%s, category=%v, admin=%t",
		req.Date.Format(domain.DateFormat), req.CategoryID, req.AdminView)

	slots, err := s.slotRepo.ListByDate(ctx, slotRepo.ListFilter{
		Date:          truncateToDay(req.Date),
		CategoryID:    req.CategoryID,
		OnlyAvailable: !req.AdminView,
	})
	if err != nil {
		s.logger.Error("ListForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForDate: fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, slotID int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlot(slot), nil
}

// UpdateSlot обновляет слот на месте. Незаданные поля сохраняют свои значения,
// инвариант окна проверяется на итоговом состоянии.
func (s *Service) UpdateSlot(ctx context.Context, slotID int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpdateSlot: slot id=%d", slotID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateSlot: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: UpdateSlot - repository error: %v", ErrInternal, err)
	}

	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.IsAvailable != nil {
		slot.IsAvailable = *req.IsAvailable
	}
	if req.ExtraPrice != nil {
		slot.ExtraPrice = *req.ExtraPrice
	}

	if err := slot.ValidateTimeRange(); err != nil {
		s.logger.Warn("UpdateSlot: invalid time range for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if slot.ExtraPrice < 0 {
		s.logger.Warn("UpdateSlot: negative extra price for slot id=%d", slotID)
		return nil, ErrInvalidExtraPrice
	}

	updated, err := s.slotRepo.Update(ctx, slotID, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: UpdateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSlot: successfully updated slot id=%d", slotID)
	return models.FromDomainSlot(updated), nil
}

// RemoveSlot удаляет слот независимо от его даты
func (s *Service) RemoveSlot(ctx context.Context, slotID int64) error {
	s.logger.Info("RemoveSlot: slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("RemoveSlot: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("RemoveSlot: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: RemoveSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RemoveSlot: successfully removed slot id=%d", slotID)
	return nil
}

// Вспомогательные методы

func validateAddSlot(req *models.AddSlotRequest) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}
	if err := domain.ValidateTimeRange(req.StartTime, req.EndTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	if req.ExtraPrice < 0 {
		return ErrInvalidExtraPrice
	}
	return nil
}

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

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
