package list_slots_admin

import (
	"context"

	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

type SlotService interface {
	ListForDate(ctx context.Context, req *slotModels.ListForDateRequest) (*slotModels.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
