package create_slot

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Date        string  `json:"date"`      // "2025-09-15"
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "10:00"
	CategoryID  *int64  `json:"categoryId,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
	ExtraPrice  float64 `json:"extraPrice"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSlotRequest) ToServiceRequest() (*slotModels.AddSlotRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &slotModels.AddSlotRequest{
		Date:        date,
		CategoryID:  r.CategoryID,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: r.IsAvailable,
		ExtraPrice:  r.ExtraPrice,
	}, nil
}
