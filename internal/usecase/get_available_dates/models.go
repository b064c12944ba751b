package get_available_dates

// Request модель запроса доступных дат
type Request struct {
	CategoryID *int64 // nil = даты для всех категорий
}

// AvailableDate доступная для бронирования дата
type AvailableDate struct {
	ID              int64  `json:"id"`
	Date            string `json:"date"` // "2025-09-15"
	CategoryID      *int64 `json:"categoryId,omitempty"`
	MaxAppointments int    `json:"maxAppointments"`
	Remaining       int    `json:"remaining"`
}

// Response модель ответа со списком доступных дат
type Response struct {
	Dates []AvailableDate `json:"dates"`
}
