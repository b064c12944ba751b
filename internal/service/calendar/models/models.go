package models

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
)

// Request модели

// AddDateRequest запрос на создание календарной даты
type AddDateRequest struct {
	Date            time.Time
	CategoryID      *int64 // nil = дата действует для всех категорий
	IsAvailable     bool
	MaxAppointments int
}

// UpdateDateRequest запрос на обновление календарной даты
type UpdateDateRequest struct {
	IsAvailable     bool
	MaxAppointments int
}

// ListEligibleRequest запрос на выдачу дат, открытых для бронирования
type ListEligibleRequest struct {
	CategoryID *int64     // nil = все категории
	FromDate   *time.Time // nil = с сегодняшнего дня
}

// Response модели

// DateResponse ответ с данными календарной даты
type DateResponse struct {
	ID              int64     `json:"id"`
	Date            string    `json:"date"` // "2025-09-15"
	CategoryID      *int64    `json:"categoryId,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	MaxAppointments int       `json:"maxAppointments"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DateListResponse ответ со списком календарных дат
type DateListResponse struct {
	Dates []DateResponse `json:"dates"`
}

// Методы конвертации

// FromDomainDate конвертирует domain модель в DTO
func FromDomainDate(d *domain.CalendarDate) *DateResponse {
	if d == nil {
		return nil
	}

	return &DateResponse{
		ID:              d.ID,
		Date:            d.Date.Format(domain.DateFormat),
		CategoryID:      d.CategoryID,
		IsAvailable:     d.IsAvailable,
		MaxAppointments: d.MaxAppointments,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// FromDomainDateList конвертирует список domain моделей в DTO
func FromDomainDateList(dates []*domain.CalendarDate) *DateListResponse {
	resp := &DateListResponse{
		Dates: make([]DateResponse, 0, len(dates)),
	}

	for _, d := range dates {
		if dateResp := FromDomainDate(d); dateResp != nil {
			resp.Dates = append(resp.Dates, *dateResp)
		}
	}

	return resp
}
