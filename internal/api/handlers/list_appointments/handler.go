package list_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	appointmentsService "github.com/m04kA/HSP-ScheduleService/internal/service/appointments"
	appointmentModels "github.com/m04kA/HSP-ScheduleService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidUserID = "некорректный параметр userId"
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/admin/appointments?date=&startDate=&endDate=&userId=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &appointmentModels.ListRequest{}

	date, ok := h.parseDateParam(w, query.Get("date"))
	if !ok {
		return
	}
	req.Date = date

	startDate, ok := h.parseDateParam(w, query.Get("startDate"))
	if !ok {
		return
	}
	req.StartDate = startDate

	endDate, ok := h.parseDateParam(w, query.Get("endDate"))
	if !ok {
		return
	}
	req.EndDate = endDate

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			h.logger.Warn("GET /admin/appointments - Invalid userId: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.UserID = &userID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidStatus) {
			h.logger.Warn("GET /admin/appointments - Invalid status: %v", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Returned %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseDateParam парсит опциональный date-параметр; при ошибке пишет 400
// и возвращает false
func (h *Handler) parseDateParam(w http.ResponseWriter, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid date parameter: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return nil, false
	}

	return &date, true
}
