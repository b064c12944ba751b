package create_date

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarModels "github.com/m04kA/HSP-ScheduleService/internal/service/calendar/models"
)

// CreateDateRequest HTTP request model
type CreateDateRequest struct {
	Date            string `json:"date"` // "2025-09-15"
	CategoryID      *int64 `json:"categoryId,omitempty"`
	IsAvailable     bool   `json:"isAvailable"`
	MaxAppointments int    `json:"maxAppointments"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDateRequest) ToServiceRequest() (*calendarModels.AddDateRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &calendarModels.AddDateRequest{
		Date:            date,
		CategoryID:      r.CategoryID,
		IsAvailable:     r.IsAvailable,
		MaxAppointments: r.MaxAppointments,
	}, nil
}
