package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("end time must be after start time")

	// ErrInvalidExtraPrice возвращается при отрицательной доплате за слот
	ErrInvalidExtraPrice = errors.New("extra price must not be negative")

	// ErrCategoryNotFound возвращается, когда категория услуг не найдена в каталоге
	ErrCategoryNotFound = errors.New("service category not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
