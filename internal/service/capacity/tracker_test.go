package capacity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
)

type mockCalendarRepo struct {
	resolveForDateFunc func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

func (m *mockCalendarRepo) ResolveForDate(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	return m.resolveForDateFunc(ctx, date, categoryID)
}

type mockAppointmentRepo struct {
	countActiveByDateFunc func(ctx context.Context, date *domain.CalendarDate) (int, error)
}

func (m *mockAppointmentRepo) CountActiveByDate(ctx context.Context, date *domain.CalendarDate) (int, error) {
	return m.countActiveByDateFunc(ctx, date)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

func calendarEntry(max int, available bool) *domain.CalendarDate {
	return &domain.CalendarDate{
		ID:              1,
		Date:            testDate,
		IsAvailable:     available,
		MaxAppointments: max,
	}
}

func TestTracker_Remaining(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return calendarEntry(5, true), nil
			},
		},
		&mockAppointmentRepo{
			countActiveByDateFunc: func(ctx context.Context, date *domain.CalendarDate) (int, error) {
				return 3, nil
			},
		},
		nopLogger{},
	)

	remaining, entry, err := tracker.Remaining(context.Background(), testDate, nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, remaining)
	assert.Equal(t, int64(1), entry.ID)
}

func TestTracker_Remaining_FlooredAtZero(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return calendarEntry(3, true), nil
			},
		},
		&mockAppointmentRepo{
			countActiveByDateFunc: func(ctx context.Context, date *domain.CalendarDate) (int, error) {
				// Вместимость могли уменьшить после создания записей
				return 5, nil
			},
		},
		nopLogger{},
	)

	remaining, _, err := tracker.Remaining(context.Background(), testDate, nil)

	assert.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestTracker_RemainingFor_ResolvedEntry(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{},
		&mockAppointmentRepo{
			countActiveByDateFunc: func(ctx context.Context, date *domain.CalendarDate) (int, error) {
				return 1, nil
			},
		},
		nopLogger{},
	)

	remaining, err := tracker.RemainingFor(context.Background(), calendarEntry(4, true))

	assert.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestTracker_Remaining_DateNotFound(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return nil, calendarRepo.ErrDateNotFound
			},
		},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	_, _, err := tracker.Remaining(context.Background(), testDate, nil)

	assert.ErrorIs(t, err, ErrDateNotFound)
}

func TestTracker_Reserve_Success(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return calendarEntry(5, true), nil
			},
		},
		&mockAppointmentRepo{
			countActiveByDateFunc: func(ctx context.Context, date *domain.CalendarDate) (int, error) {
				return 4, nil
			},
		},
		nopLogger{},
	)

	entry, err := tracker.Reserve(context.Background(), testDate, nil)

	assert.NoError(t, err)
	assert.Equal(t, 5, entry.MaxAppointments)
}

func TestTracker_Reserve_DateNotFound(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return nil, calendarRepo.ErrDateNotFound
			},
		},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	_, err := tracker.Reserve(context.Background(), testDate, nil)

	assert.ErrorIs(t, err, ErrDateNotFound)
}

func TestTracker_Reserve_DateClosed(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return calendarEntry(5, false), nil
			},
		},
		&mockAppointmentRepo{},
		nopLogger{},
	)

	_, err := tracker.Reserve(context.Background(), testDate, nil)

	assert.ErrorIs(t, err, ErrDateNotAvailable)
}

func TestTracker_Reserve_CapacityExhausted(t *testing.T) {
	tracker := NewTracker(
		&mockCalendarRepo{
			resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
				return calendarEntry(3, true), nil
			},
		},
		&mockAppointmentRepo{
			countActiveByDateFunc: func(ctx context.Context, date *domain.CalendarDate) (int, error) {
				return 3, nil
			},
		},
		nopLogger{},
	)

	_, err := tracker.Reserve(context.Background(), testDate, nil)

	assert.ErrorIs(t, err, ErrCapacityExhausted)
}
