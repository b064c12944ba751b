package apply_slots_bulk

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	applySlotsBulk "github.com/m04kA/HSP-ScheduleService/internal/usecase/apply_slots_bulk"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени"
	msgNoTargetDates      = "не выбрано ни одной целевой даты"
	msgInvalidInput       = "некорректные данные шаблона слота"
)

type Handler struct {
	useCase ApplySlotsBulkUseCase
	logger  Logger
}

func NewHandler(useCase ApplySlotsBulkUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/available-time-slots/bulk
// Частичный отказ батча — не ошибка запроса: ответ 200 с разбивкой
// по датам, клиент сам решает, что делать с отказавшими датами.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplySlotsBulkRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/available-time-slots/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/available-time-slots/bulk - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, applySlotsBulk.ErrNoTargetDates):
			h.logger.Warn("POST /admin/available-time-slots/bulk - No target dates")
			handlers.RespondUnprocessableEntity(w, msgNoTargetDates)

		case errors.Is(err, applySlotsBulk.ErrInvalidInput):
			h.logger.Warn("POST /admin/available-time-slots/bulk - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/available-time-slots/bulk - Failed to apply slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/available-time-slots/bulk - Applied: %d succeeded, %d failed",
		len(result.Succeeded), len(result.Failed))
	handlers.RespondJSON(w, http.StatusOK, result)
}
