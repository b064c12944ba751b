package calendar

import "errors"

var (
	// ErrDateNotFound возвращается, когда календарная дата не найдена
	ErrDateNotFound = errors.New("calendar date not found")

	// ErrDuplicateDate возвращается, когда активная запись для пары
	// (дата, категория) уже существует
	ErrDuplicateDate = errors.New("calendar date already exists for this scope")

	// ErrInvalidCapacity возвращается при вместимости меньше единицы
	ErrInvalidCapacity = errors.New("max appointments must be at least 1")

	// ErrCategoryNotFound возвращается, когда категория услуг не найдена в каталоге
	ErrCategoryNotFound = errors.New("service category not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("calendar service: internal error")
)
