package appointments

import (
	"context"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/userservice"
)

// AppointmentRepository интерфейс репозитория записей на обслуживание
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.AppointmentStatus) error
}

// UserServiceClient интерфейс клиента директории пользователей
type UserServiceClient interface {
	GetUserWithGracefulDegradation(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
