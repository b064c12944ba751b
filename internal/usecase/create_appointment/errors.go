package create_appointment

import "errors"

var (
	// ErrDateNotBookable возвращается, когда на дату нет активной календарной записи
	ErrDateNotBookable = errors.New("create_appointment: date is not open for booking")

	// ErrInvalidDate возвращается при дате записи в прошлом
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrSlotNotBookable возвращается, когда выбранное время не предлагается на дату
	ErrSlotNotBookable = errors.New("create_appointment: time slot is not offered on this date")

	// ErrCapacityExhausted возвращается, когда вместимость даты исчерпана
	ErrCapacityExhausted = errors.New("create_appointment: date capacity exhausted")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
