package get_available_dates

import (
	"net/http"
	"strconv"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/HSP-ScheduleService/internal/usecase/get_available_dates"
)

const (
	msgInvalidCategoryID = "некорректный параметр categoryId"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates?categoryId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.logger.Warn("GET /available-dates - Invalid categoryId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		categoryID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		CategoryID: categoryID,
	})
	if err != nil {
		h.logger.Error("GET /available-dates - Failed to get dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-dates - Returned %d dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
