package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/userservice"
	"github.com/m04kA/HSP-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/HSP-ScheduleService/pkg/ptr"
)

type mockAppointmentRepo struct {
	getByIDFunc          func(ctx context.Context, id int64) (*domain.Appointment, error)
	listWithFilterFunc   func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	updateStatusFromFunc func(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return m.listWithFilterFunc(ctx, filter)
}

func (m *mockAppointmentRepo) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	return m.updateStatusFromFunc(ctx, id, from, to)
}

type mockUserClient struct {
	getUserFunc func(ctx context.Context, userID int64) (*userservice.User, error)
}

func (m *mockUserClient) GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error) {
	return m.getUserFunc(ctx, userID)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:                 id,
		UserID:             100,
		ServiceDescription: "Замена смесителя",
		Date:               time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:          "09:00",
		Location: domain.Location{
			AddressLine: "ул. Ленина, д. 1",
			City:        "Москва",
		},
		Price:  1500,
		Status: status,
	}
}

func TestService_UpdateStatus_FullLifecycle(t *testing.T) {
	// pending -> confirmed -> in_progress -> completed
	steps := []struct {
		current domain.AppointmentStatus
		target  string
	}{
		{domain.StatusPending, "confirmed"},
		{domain.StatusConfirmed, "in_progress"},
		{domain.StatusInProgress, "completed"},
	}

	for _, step := range steps {
		t.Run(string(step.current)+"_to_"+step.target, func(t *testing.T) {
			current := step.current
			repo := &mockAppointmentRepo{
				getByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
					return testAppointment(1, current), nil
				},
				updateStatusFromFunc: func(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
					assert.Equal(t, current, from)
					current = to
					return nil
				},
			}
			svc := NewService(repo, &mockUserClient{
				getUserFunc: func(ctx context.Context, userID int64) (*userservice.User, error) {
					return nil, userservice.ErrServiceDegraded
				},
			}, nopLogger{})

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: step.target})

			assert.NoError(t, err)
			assert.Equal(t, step.target, resp.Status)
		})
	}
}

func TestService_UpdateStatus_InvalidTransition(t *testing.T) {
	repo := &mockAppointmentRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return testAppointment(1, domain.StatusCompleted), nil
		},
	}
	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_CancelTwiceRejected(t *testing.T) {
	repo := &mockAppointmentRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return testAppointment(1, domain.StatusCancelled), nil
		},
	}
	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockUserClient{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "done"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_UpdateStatus_ConcurrentConflict(t *testing.T) {
	repo := &mockAppointmentRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return testAppointment(1, domain.StatusPending), nil
		},
		updateStatusFromFunc: func(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
			// Статус успел измениться между чтением и условным UPDATE
			return appointmentRepo.ErrStatusConflict
		},
	}
	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrStatusConflict)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}
	svc := NewService(repo, &mockUserClient{}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 404, &models.UpdateStatusRequest{Status: "confirmed"})

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_List_EnrichesCustomerFields(t *testing.T) {
	repo := &mockAppointmentRepo{
		listWithFilterFunc: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{testAppointment(1, domain.StatusPending)}, nil
		},
	}
	client := &mockUserClient{
		getUserFunc: func(ctx context.Context, userID int64) (*userservice.User, error) {
			return &userservice.User{
				ID:        userID,
				FirstName: "Иван",
				LastName:  "Петров",
				Phone:     "+79990001122",
				Email:     "ivan@example.com",
			}, nil
		},
	}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{})

	assert.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, "Иван Петров", *resp.Appointments[0].CustomerName)
	assert.Equal(t, "+79990001122", *resp.Appointments[0].CustomerPhone)
	assert.Equal(t, "ivan@example.com", *resp.Appointments[0].CustomerEmail)
}

func TestService_List_GracefulDegradation(t *testing.T) {
	repo := &mockAppointmentRepo{
		listWithFilterFunc: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{testAppointment(1, domain.StatusPending)}, nil
		},
	}
	client := &mockUserClient{
		getUserFunc: func(ctx context.Context, userID int64) (*userservice.User, error) {
			return nil, userservice.ErrServiceDegraded
		},
	}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{})

	// Недоступность UserService не валит выдачу
	assert.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	assert.Nil(t, resp.Appointments[0].CustomerName)
	assert.Nil(t, resp.Appointments[0].CustomerPhone)
}

func TestService_List_CachesUserWithinRequest(t *testing.T) {
	repo := &mockAppointmentRepo{
		listWithFilterFunc: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{
				testAppointment(1, domain.StatusPending),
				testAppointment(2, domain.StatusConfirmed),
			}, nil
		},
	}
	calls := 0
	client := &mockUserClient{
		getUserFunc: func(ctx context.Context, userID int64) (*userservice.User, error) {
			calls++
			return &userservice.User{ID: userID, FirstName: "Иван", LastName: "Петров"}, nil
		},
	}
	svc := NewService(repo, client, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListRequest{})

	assert.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	// Оба appointment принадлежат одному пользователю — один поход в UserService
	assert.Equal(t, 1, calls)
}

func TestService_List_UnknownStatusFilter(t *testing.T) {
	svc := NewService(&mockAppointmentRepo{}, &mockUserClient{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("archived")})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}
