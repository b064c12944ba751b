package update_slot

import (
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// UpdateSlotRequest HTTP request model.
// Отсутствующие поля сохраняют текущие значения слота.
type UpdateSlotRequest struct {
	StartTime   *string  `json:"startTime,omitempty"` // "09:00"
	EndTime     *string  `json:"endTime,omitempty"`   // "10:00"
	IsAvailable *bool    `json:"isAvailable,omitempty"`
	ExtraPrice  *float64 `json:"extraPrice,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSlotRequest) ToServiceRequest() (*slotModels.UpdateSlotRequest, error) {
	req := &slotModels.UpdateSlotRequest{
		IsAvailable: r.IsAvailable,
		ExtraPrice:  r.ExtraPrice,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	return req, nil
}
