package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/userservice"
	"github.com/m04kA/HSP-ScheduleService/internal/service/appointments/models"
)

// Service сервис жизненного цикла записей на обслуживание (AppointmentLifecycle)
type Service struct {
	appointmentRepo AppointmentRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// List получает записи с фильтрацией и обогащает их отображаемыми данными
// пользователей. Недоступность UserService не валит выдачу: записи
// возвращаются без полей customer* (graceful degradation).
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: date=%v, user=%v, status=%v, includeInactive=%t",
		req.Date, req.UserID, req.Status, req.IncludeInactive)

	var status *domain.AppointmentStatus
	if req.Status != nil {
		st, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: unknown status %q requested", *req.Status)
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		status = &st
	}

	appts, err := s.appointmentRepo.ListWithFilter(ctx, domain.AppointmentsFilter{
		Date:            req.Date,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		UserID:          req.UserID,
		Status:          status,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.AppointmentListResponse{
		Appointments: make([]models.AppointmentResponse, 0, len(appts)),
	}

	// Кэшируем пользователей в пределах запроса: один пользователь может
	// держать несколько записей в выдаче
	userCache := make(map[int64]*userservice.User)

	for _, appt := range appts {
		apptResp := models.FromDomainAppointment(appt)

		user, cached := userCache[appt.UserID]
		if !cached {
			user = s.fetchUser(ctx, appt.UserID)
			userCache[appt.UserID] = user
		}
		apptResp.EnrichWithUser(user)

		resp.Appointments = append(resp.Appointments, *apptResp)
	}

	s.logger.Info("List: fetched %d appointments", len(resp.Appointments))
	return resp, nil
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, appointmentID int64) (*models.AppointmentResponse, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAppointment(appt)
	resp.EnrichWithUser(s.fetchUser(ctx, appt.UserID))

	return resp, nil
}

// UpdateStatus переводит запись в новый статус по машине состояний.
// Переход применяется условно по текущему статусу: если статус записи
// успел измениться конкурентно, возвращается ErrStatusConflict.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d, target status=%q", appointmentID, req.Status)

	to, ok := models.ToDomainStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: unknown status %q for appointment id=%d", req.Status, appointmentID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appt.Status.CanTransitionTo(to) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%d",
			appt.Status, to, appointmentID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, to)
	}

	if err := s.appointmentRepo.UpdateStatusFrom(ctx, appointmentID, appt.Status, to); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrStatusConflict):
			s.logger.Warn("UpdateStatus: concurrent status change for appointment id=%d", appointmentID)
			return nil, ErrStatusConflict
		default:
			s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - fetch updated appointment: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved to %s", appointmentID, to)

	resp := models.FromDomainAppointment(updated)
	resp.EnrichWithUser(s.fetchUser(ctx, updated.UserID))

	return resp, nil
}

// fetchUser получает данные пользователя с graceful degradation:
// любая ошибка превращается в nil, выдача не блокируется
func (s *Service) fetchUser(ctx context.Context, userID int64) *userservice.User {
	user, err := s.userClient.GetUserWithGracefulDegradation(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}
