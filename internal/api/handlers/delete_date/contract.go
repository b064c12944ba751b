package delete_date

import "context"

type CalendarService interface {
	Remove(ctx context.Context, dateID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
