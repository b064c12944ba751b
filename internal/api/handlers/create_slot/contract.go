package create_slot

import (
	"context"

	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

type SlotService interface {
	AddSlot(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
