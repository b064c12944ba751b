package models

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/internal/integrations/userservice"
)

// Request модели

// ListRequest запрос административного списка записей
type ListRequest struct {
	Date            *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	UserID          *int64
	Status          *string
	IncludeInactive bool // true = включая отменённые записи
}

// UpdateStatusRequest запрос на перевод записи в новый статус
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// LocationResponse адрес выполнения работ
type LocationResponse struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// AppointmentResponse ответ с данными записи.
// Поля customer* заполняются из UserService и при его недоступности
// остаются пустыми — список отдаётся в режиме graceful degradation.
type AppointmentResponse struct {
	ID                 int64            `json:"id"`
	UserID             int64            `json:"userId"`
	CustomerName       *string          `json:"customerName,omitempty"`
	CustomerPhone      *string          `json:"customerPhone,omitempty"`
	CustomerEmail      *string          `json:"customerEmail,omitempty"`
	ServiceDescription string           `json:"serviceDescription"`
	Date               string           `json:"date"`      // "2025-09-15"
	StartTime          string           `json:"startTime"` // "09:00"
	Location           LocationResponse `json:"location"`
	Price              float64          `json:"price"`
	Status             string           `json:"status"`
	Notes              *string          `json:"notes,omitempty"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                 a.ID,
		UserID:             a.UserID,
		ServiceDescription: a.ServiceDescription,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		Location: LocationResponse{
			AddressLine: a.Location.AddressLine,
			City:        a.Location.City,
			PostalCode:  a.Location.PostalCode,
		},
		Price:     a.Price,
		Status:    string(a.Status),
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// EnrichWithUser заполняет отображаемые поля пользователя
func (r *AppointmentResponse) EnrichWithUser(user *userservice.User) {
	if user == nil {
		return
	}

	fullName := user.FirstName + " " + user.LastName
	r.CustomerName = &fullName
	if user.Phone != "" {
		phone := user.Phone
		r.CustomerPhone = &phone
	}
	if user.Email != "" {
		email := user.Email
		r.CustomerEmail = &email
	}
}

// ToDomainStatus конвертирует строку статуса в domain модель.
// Возвращает false, если статус вне закрытого множества.
func ToDomainStatus(s string) (domain.AppointmentStatus, bool) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", false
	}
	return status, true
}
