package catalogservice

// Category категория услуг из каталога.
// Справочная сущность, владеет ей каталог — здесь только для проверки
// существования и отображения.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
