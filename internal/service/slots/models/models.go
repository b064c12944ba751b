package models

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// Request модели

// AddSlotRequest запрос на создание слота
type AddSlotRequest struct {
	Date        time.Time
	CategoryID  *int64 // nil = слот действует для всех категорий
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	ExtraPrice  float64
}

// UpdateSlotRequest запрос на обновление слота.
// nil-поля не изменяются.
type UpdateSlotRequest struct {
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	IsAvailable *bool
	ExtraPrice  *float64
}

// ListForDateRequest запрос на выдачу слотов на дату
type ListForDateRequest struct {
	Date       time.Time
	CategoryID *int64
	AdminView  bool // true = включая недоступные слоты
}

// Response модели

// SlotResponse ответ с данными слота.
// Времена отдаются в каноническом 24-часовом формате "HH:MM";
// 12-часовое отображение — забота клиента.
type SlotResponse struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"` // "2025-09-15"
	CategoryID  *int64    `json:"categoryId,omitempty"`
	StartTime   string    `json:"startTime"` // "09:00"
	EndTime     string    `json:"endTime"`   // "10:00"
	IsAvailable bool      `json:"isAvailable"`
	ExtraPrice  float64   `json:"extraPrice"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:          s.ID,
		Date:        s.Date.Format(domain.DateFormat),
		CategoryID:  s.CategoryID,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		IsAvailable: s.IsAvailable,
		ExtraPrice:  s.ExtraPrice,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.TimeSlot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}
