package calendar

import "errors"

var (
	// ErrDateNotFound возвращается, когда календарная дата не найдена
	ErrDateNotFound = errors.New("calendar.repository: calendar date not found")

	// ErrDuplicateDate возвращается при попытке создать вторую активную запись
	// для той же пары (дата, категория)
	ErrDuplicateDate = errors.New("calendar.repository: duplicate calendar date for scope")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
