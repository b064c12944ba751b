package list_slots_admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
)

const (
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCategoryID = "некорректный параметр categoryId"
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

// Handle GET /api/v1/admin/available-time-slots?date=&categoryId=
// Административная выдача: слоты возвращаются независимо от флага доступности
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /admin/available-time-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /admin/available-time-slots - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /admin/available-time-slots - Invalid categoryId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.service.ListForDate(r.Context(), &slotModels.ListForDateRequest{
		Date:       date,
		CategoryID: categoryID,
		AdminView:  true,
	})
	if err != nil {
		h.logger.Error("GET /admin/available-time-slots - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/available-time-slots - Returned %d slots for %s", len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
