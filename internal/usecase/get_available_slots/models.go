package get_available_slots

import "time"

// Request модель запроса доступных слотов на дату
type Request struct {
	Date       time.Time // Дата (без времени)
	CategoryID *int64    // nil = слоты для всех категорий
}

// AvailableSlot доступный временной слот
type AvailableSlot struct {
	ID          int64   `json:"id"`
	StartTime   string  `json:"startTime"` // "09:00"
	EndTime     string  `json:"endTime"`   // "10:00"
	ExtraPrice  float64 `json:"extraPrice"`
	IsAvailable bool    `json:"isAvailable"`
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []AvailableSlot `json:"slots"`
}
