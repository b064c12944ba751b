package delete_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	calendarService "github.com/m04kA/HSP-ScheduleService/internal/service/calendar"
)

const (
	msgInvalidDateID = "некорректный идентификатор даты"
	msgDateNotFound  = "календарная дата не найдена"
)

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

// Handle DELETE /api/v1/admin/available-dates/{dateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateID, err := strconv.ParseInt(mux.Vars(r)["dateId"], 10, 64)
	if err != nil || dateID <= 0 {
		h.logger.Warn("DELETE /admin/available-dates/{dateId} - Invalid date ID: %q", mux.Vars(r)["dateId"])
		handlers.RespondBadRequest(w, msgInvalidDateID)
		return
	}

	if err := h.service.Remove(r.Context(), dateID); err != nil {
		if errors.Is(err, calendarService.ErrDateNotFound) {
			h.logger.Warn("DELETE /admin/available-dates/%d - Date not found", dateID)
			handlers.RespondNotFound(w, msgDateNotFound)
			return
		}
		h.logger.Error("DELETE /admin/available-dates/%d - Failed to delete date: %v", dateID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/available-dates/%d - Date deleted successfully", dateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
