package apply_slots_bulk

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	applySlotsBulk "github.com/m04kA/HSP-ScheduleService/internal/usecase/apply_slots_bulk"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// ApplySlotsBulkRequest HTTP request model.
// Пустой targetDates = все даты, открытые для бронирования
// в области видимости категории шаблона.
type ApplySlotsBulkRequest struct {
	StartTime   string   `json:"startTime"` // "09:00"
	EndTime     string   `json:"endTime"`   // "10:00"
	CategoryID  *int64   `json:"categoryId,omitempty"`
	IsAvailable bool     `json:"isAvailable"`
	ExtraPrice  float64  `json:"extraPrice"`
	TargetDates []string `json:"targetDates,omitempty"` // ["2025-09-15", ...]
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplySlotsBulkRequest) ToUseCaseRequest() (*applySlotsBulk.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	targets := make([]time.Time, 0, len(r.TargetDates))
	for _, raw := range r.TargetDates {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, err
		}
		targets = append(targets, date)
	}

	return &applySlotsBulk.Request{
		CategoryID:  r.CategoryID,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: r.IsAvailable,
		ExtraPrice:  r.ExtraPrice,
		TargetDates: targets,
	}, nil
}
