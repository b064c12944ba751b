package update_appointment_status

import (
	"context"

	appointmentModels "github.com/m04kA/HSP-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, appointmentID int64, req *appointmentModels.UpdateStatusRequest) (*appointmentModels.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
