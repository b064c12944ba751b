package create_appointment

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// Location структурированный снимок адреса выполнения работ
type Location struct {
	AddressLine string // Улица и дом
	City        string // Город
	PostalCode  string // Почтовый индекс
}

// Request модель запроса на создание записи
type Request struct {
	UserID             int64            // ID пользователя (из заголовка авторизации)
	ServiceDescription string           // Свободное описание забронированных услуг
	Date               time.Time        // Дата записи (без времени)
	StartTime          types.TimeString // Время начала слота (например, "09:00")
	CategoryID         *int64           // Категория услуг (nil = без категории)
	Location           Location         // Адрес выполнения работ
	BasePrice          float64          // Базовая стоимость услуг (без доплаты за слот)
	Notes              *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID                 int64            // ID созданной записи
	UserID             int64            // ID пользователя
	ServiceDescription string           // Описание услуг
	Date               time.Time        // Дата записи
	StartTime          types.TimeString // Время начала
	Location           Location         // Адрес выполнения работ
	Price              float64          // Итоговая стоимость (с доплатой за слот)
	Status             string           // Статус записи (всегда pending при создании)
	Notes              *string          // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
