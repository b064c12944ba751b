package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/HSP-ScheduleService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgSlotNotFound  = "временной слот не найден"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/available-time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /admin/available-time-slots/{slotId} - Invalid slot ID: %q", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.RemoveSlot(r.Context(), slotID); err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("DELETE /admin/available-time-slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("DELETE /admin/available-time-slots/%d - Failed to delete slot: %v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/available-time-slots/%d - Slot deleted successfully", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
