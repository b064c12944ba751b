package apply_slots_bulk

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// Request модель запроса массового применения шаблона слота.
// Шаблон фиксирует одну категорию на весь батч: применение по смешанным
// категориям не поддерживается, операция запускается по разу на категорию.
type Request struct {
	CategoryID  *int64           // Категория шаблона (nil = глобальный слот)
	StartTime   types.TimeString // Время начала слота
	EndTime     types.TimeString // Время конца слота
	IsAvailable bool             // Флаг доступности создаваемых слотов
	ExtraPrice  float64          // Доплата за слот

	// Целевые даты. Пустой список = все даты, открытые для бронирования
	// в области видимости категории шаблона.
	TargetDates []time.Time
}

// FailedDate дата, на которой применение шаблона не удалось
type FailedDate struct {
	Date   string `json:"date"` // "2025-09-15"
	Reason string `json:"reason"`
}

// Response результат массового применения: частичный отказ — не отказ батча.
// Каждый исход наблюдаем по отдельности.
type Response struct {
	Succeeded []string     `json:"succeeded"` // Даты успешно созданных слотов
	Failed    []FailedDate `json:"failed"`    // Даты с причинами отказа
}
