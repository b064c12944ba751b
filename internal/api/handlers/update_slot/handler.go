package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/HSP-ScheduleService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSlotNotFound       = "временной слот не найден"
	msgInvalidTimeRange   = "время конца слота должно быть позже времени начала"
	msgInvalidExtraPrice  = "доплата за слот не может быть отрицательной"
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

// Handle PUT /api/v1/admin/available-time-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PUT /admin/available-time-slots/{slotId} - Invalid slot ID: %q", mux.Vars(r)["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/available-time-slots/%d - Invalid request body: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /admin/available-time-slots/%d - Failed to parse request: %v", slotID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.UpdateSlot(r.Context(), slotID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("PUT /admin/available-time-slots/%d - Slot not found", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrInvalidTimeRange):
			h.logger.Warn("PUT /admin/available-time-slots/%d - Invalid time range", slotID)
			handlers.RespondUnprocessableEntity(w, msgInvalidTimeRange)

		case errors.Is(err, slotsService.ErrInvalidExtraPrice):
			h.logger.Warn("PUT /admin/available-time-slots/%d - Invalid extra price", slotID)
			handlers.RespondUnprocessableEntity(w, msgInvalidExtraPrice)

		default:
			h.logger.Error("PUT /admin/available-time-slots/%d - Failed to update slot: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/available-time-slots/%d - Slot updated successfully", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
