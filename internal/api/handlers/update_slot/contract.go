package update_slot

import (
	"context"

	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

type SlotService interface {
	UpdateSlot(ctx context.Context, slotID int64, req *slotModels.UpdateSlotRequest) (*slotModels.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
