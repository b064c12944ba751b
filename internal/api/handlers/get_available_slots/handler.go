package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/HSP-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate       = "параметр date обязателен"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidCategoryID = "некорректный параметр categoryId"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-time-slots?date=YYYY-MM-DD&categoryId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /available-time-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-time-slots - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /available-time-slots - Invalid categoryId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:       date,
		CategoryID: categoryID,
	})
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /available-time-slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-time-slots - Returned %d slots for %s", len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, result)
}
