package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSP-ScheduleService/internal/api/handlers"
	"github.com/m04kA/HSP-ScheduleService/internal/api/middleware"
	createAppointment "github.com/m04kA/HSP-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnauthorized       = "требуется аутентификация"
	msgDateNotBookable    = "выбранная дата недоступна для записи"
	msgInvalidApptDate    = "некорректная дата записи"
	msgSlotNotBookable    = "выбранное время не предлагается на эту дату"
	msgCapacityExhausted  = "на выбранную дату не осталось свободных мест"
	msgValidationFailed   = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrCapacityExhausted):
			h.logger.Warn("POST /appointments - Capacity exhausted: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExhausted)

		case errors.Is(err, createAppointment.ErrDateNotBookable):
			h.logger.Warn("POST /appointments - Date not bookable: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondUnprocessableEntity(w, msgDateNotBookable)

		case errors.Is(err, createAppointment.ErrSlotNotBookable):
			h.logger.Warn("POST /appointments - Slot not bookable: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondUnprocessableEntity(w, msgSlotNotBookable)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid appointment date: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondUnprocessableEntity(w, msgInvalidApptDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
