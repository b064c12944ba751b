package create_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	calendarService "github.com/m04kA/HSP-ScheduleService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDuplicateDate      = "на эту дату уже есть активная запись календаря"
	msgInvalidCapacity    = "вместимость даты должна быть не меньше 1"
	msgCategoryNotFound   = "категория услуг не найдена"
	msgInvalidInput       = "некорректные данные календарной даты"
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

// Handle POST /api/v1/admin/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/available-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/available-dates - Invalid date: %q", req.Date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.AddDate(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrDuplicateDate):
			h.logger.Warn("POST /admin/available-dates - Duplicate date: %s", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDate)

		case errors.Is(err, calendarService.ErrInvalidCapacity):
			h.logger.Warn("POST /admin/available-dates - Invalid capacity: %d", req.MaxAppointments)
			handlers.RespondUnprocessableEntity(w, msgInvalidCapacity)

		case errors.Is(err, calendarService.ErrCategoryNotFound):
			h.logger.Warn("POST /admin/available-dates - Category not found: %v", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("POST /admin/available-dates - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/available-dates - Failed to create date: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/available-dates - Date created successfully: date_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
