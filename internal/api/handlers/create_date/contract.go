package create_date

import (
	"context"

	calendarModels "github.com/m04kA/HSP-ScheduleService/internal/service/calendar/models"
)

type CalendarService interface {
	AddDate(ctx context.Context, req *calendarModels.AddDateRequest) (*calendarModels.DateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
