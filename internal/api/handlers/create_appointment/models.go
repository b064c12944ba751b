package create_appointment

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	createAppointment "github.com/m04kA/HSP-ScheduleService/internal/usecase/create_appointment"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// LocationRequest адрес выполнения работ
type LocationRequest struct {
	AddressLine string `json:"addressLine"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceDescription string          `json:"serviceDescription"`
	Date               string          `json:"date"`      // "2025-09-15"
	StartTime          string          `json:"startTime"` // "09:00"
	CategoryID         *int64          `json:"categoryId,omitempty"`
	Location           LocationRequest `json:"location"`
	Price              float64         `json:"price"`
	Notes              *string         `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"userId"`
	ServiceDescription string          `json:"serviceDescription"`
	Date               string          `json:"date"`
	StartTime          string          `json:"startTime"`
	Location           LocationRequest `json:"location"`
	Price              float64         `json:"price"`
	Status             string          `json:"status"`
	Notes              *string         `json:"notes,omitempty"`
	CreatedAt          string          `json:"createdAt"`
	UpdatedAt          string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:             userID,
		ServiceDescription: r.ServiceDescription,
		Date:               date,
		StartTime:          startTime,
		CategoryID:         r.CategoryID,
		Location: createAppointment.Location{
			AddressLine: r.Location.AddressLine,
			City:        r.Location.City,
			PostalCode:  r.Location.PostalCode,
		},
		BasePrice: r.Price,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 resp.ID,
		UserID:             resp.UserID,
		ServiceDescription: resp.ServiceDescription,
		Date:               resp.Date.Format(domain.DateFormat),
		StartTime:          resp.StartTime.String(),
		Location: LocationRequest{
			AddressLine: resp.Location.AddressLine,
			City:        resp.Location.City,
			PostalCode:  resp.Location.PostalCode,
		},
		Price:     resp.Price,
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
