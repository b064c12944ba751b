package apply_slots_bulk

import (
	"context"

	applySlotsBulk "github.com/m04kA/HSP-ScheduleService/internal/usecase/apply_slots_bulk"
)

type ApplySlotsBulkUseCase interface {
	Execute(ctx context.Context, req *applySlotsBulk.Request) (*applySlotsBulk.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
