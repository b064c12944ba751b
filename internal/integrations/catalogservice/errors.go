package catalogservice

import "errors"

var (
	// ErrCategoryNotFound возвращается, когда категория услуг не найдена
	ErrCategoryNotFound = errors.New("service category not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
