package capacity

import "errors"

var (
	// ErrDateNotFound возвращается, когда на дату нет календарной записи
	ErrDateNotFound = errors.New("no calendar entry for date")

	// ErrDateNotAvailable возвращается, когда дата закрыта для бронирования
	ErrDateNotAvailable = errors.New("date is not available for booking")

	// ErrCapacityExhausted возвращается, когда вместимость даты исчерпана
	ErrCapacityExhausted = errors.New("date capacity exhausted")

	// ErrInternal возвращается при внутренних ошибках трекера
	ErrInternal = errors.New("capacity tracker: internal error")
)
