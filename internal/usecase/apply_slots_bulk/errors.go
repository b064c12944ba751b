package apply_slots_bulk

import "errors"

var (
	// ErrNoTargetDates возвращается, когда отбор целевых дат дал пустое множество
	ErrNoTargetDates = errors.New("apply_slots_bulk: no target dates selected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_slots_bulk: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_slots_bulk: internal error")
)
