package update_appointment_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	appointmentsService "github.com/m04kA/HSP-ScheduleService/internal/service/appointments"
	appointmentModels "github.com/m04kA/HSP-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidAppointmentID  = "некорректный идентификатор записи"
	msgAppointmentNotFound   = "запись не найдена"
	msgInvalidStatus         = "некорректный статус записи"
	msgInvalidTransition     = "недопустимый переход статуса"
	msgConcurrentStatusWrite = "статус записи был изменён параллельно, повторите запрос"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil || appointmentID <= 0 {
		h.logger.Warn("PUT /admin/appointments/{appointmentId}/status - Invalid appointment ID: %q",
			mux.Vars(r)["appointmentId"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req appointmentModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/appointments/%d/status - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), appointmentID, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PUT /admin/appointments/%d/status - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/appointments/%d/status - Invalid status: %q", appointmentID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PUT /admin/appointments/%d/status - Invalid transition to %q", appointmentID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, appointmentsService.ErrStatusConflict):
			h.logger.Warn("PUT /admin/appointments/%d/status - Concurrent status change", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentStatusWrite)

		default:
			h.logger.Error("PUT /admin/appointments/%d/status - Failed to update status: %v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/appointments/%d/status - Status updated to %q", appointmentID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
