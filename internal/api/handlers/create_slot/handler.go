package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/HSP-ScheduleService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgInvalidTimeRange   = "время конца слота должно быть позже времени начала"
	msgInvalidExtraPrice  = "доплата за слот не может быть отрицательной"
	msgCategoryNotFound   = "категория услуг не найдена"
	msgInvalidInput       = "некорректные данные слота"
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

// Handle POST /api/v1/admin/available-time-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/available-time-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/available-time-slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.AddSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/available-time-slots - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondUnprocessableEntity(w, msgInvalidTimeRange)

		case errors.Is(err, slotsService.ErrInvalidExtraPrice):
			h.logger.Warn("POST /admin/available-time-slots - Invalid extra price: %f", req.ExtraPrice)
			handlers.RespondUnprocessableEntity(w, msgInvalidExtraPrice)

		case errors.Is(err, slotsService.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/available-time-slots - Category not found: %v", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /admin/available-time-slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/available-time-slots - Failed to create slot: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/available-time-slots - Slot created successfully: slot_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
