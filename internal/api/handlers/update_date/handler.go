package update_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	calendarService "github.com/m04kA/HSP-ScheduleService/internal/service/calendar"
	calendarModels "github.com/m04kA/HSP-ScheduleService/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateID      = "некорректный идентификатор даты"
	msgDateNotFound       = "календарная дата не найдена"
	msgInvalidCapacity    = "вместимость даты должна быть не меньше 1"
)

// UpdateDateRequest HTTP request model
type UpdateDateRequest struct {
	IsAvailable     bool `json:"isAvailable"`
	MaxAppointments int  `json:"maxAppointments"`
}

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/available-dates/{dateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateID, err := strconv.ParseInt(mux.Vars(r)["dateId"], 10, 64)
	if err != nil || dateID <= 0 {
		h.logger.Warn("PUT /admin/available-dates/{dateId} - Invalid date ID: %q", mux.Vars(r)["dateId"])
		handlers.RespondBadRequest(w, msgInvalidDateID)
		return
	}

	var req UpdateDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/available-dates/%d - Invalid request body: %v", dateID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), dateID, &calendarModels.UpdateDateRequest{
		IsAvailable:     req.IsAvailable,
		MaxAppointments: req.MaxAppointments,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrDateNotFound):
			h.logger.Warn("PUT /admin/available-dates/%d - Date not found", dateID)
			handlers.RespondNotFound(w, msgDateNotFound)

		case errors.Is(err, calendarService.ErrInvalidCapacity):
			h.logger.Warn("PUT /admin/available-dates/%d - Invalid capacity: %d", dateID, req.MaxAppointments)
			handlers.RespondUnprocessableEntity(w, msgInvalidCapacity)

		default:
			h.logger.Error("PUT /admin/available-dates/%d - Failed to update date: %v", dateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/available-dates/%d - Date updated successfully", dateID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
