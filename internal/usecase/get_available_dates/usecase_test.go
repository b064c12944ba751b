package get_available_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	"github.com/m04kA/HSP-ScheduleService/pkg/ptr"
)

type mockCalendarRepo struct {
	listEligibleFunc func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error)
}

func (m *mockCalendarRepo) ListEligible(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
	return m.listEligibleFunc(ctx, categoryID, fromDate)
}

type mockCapacityTracker struct {
	remainingForFunc func(ctx context.Context, entry *domain.CalendarDate) (int, error)
}

func (m *mockCapacityTracker) RemainingFor(ctx context.Context, entry *domain.CalendarDate) (int, error) {
	return m.remainingForFunc(ctx, entry)
}

type mockTimeProvider struct {
	now time.Time
}

func (m *mockTimeProvider) Now() time.Time {
	return m.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestUseCase_Execute_ExcludesExhaustedDates(t *testing.T) {
	calRepo := &mockCalendarRepo{
		listEligibleFunc: func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
			return []*domain.CalendarDate{
				{ID: 1, Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), IsAvailable: true, MaxAppointments: 5},
				{ID: 2, Date: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC), IsAvailable: true, MaxAppointments: 3},
			}, nil
		},
	}
	tracker := &mockCapacityTracker{
		remainingForFunc: func(ctx context.Context, entry *domain.CalendarDate) (int, error) {
			// Вторая дата заполнена под завязку
			if entry.ID == 2 {
				return 0, nil
			}
			return 3, nil
		},
	}
	uc := NewUseCase(calRepo, tracker, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	assert.NoError(t, err)
	assert.Len(t, resp.Dates, 1)
	assert.Equal(t, int64(1), resp.Dates[0].ID)
	assert.Equal(t, "2025-09-15", resp.Dates[0].Date)
	assert.Equal(t, 3, resp.Dates[0].Remaining)
}

func TestUseCase_Execute_PassesScopeAndToday(t *testing.T) {
	var gotCategory *int64
	var gotFrom time.Time
	calRepo := &mockCalendarRepo{
		listEligibleFunc: func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
			gotCategory = categoryID
			gotFrom = fromDate
			return []*domain.CalendarDate{}, nil
		},
	}
	uc := NewUseCase(calRepo, &mockCapacityTracker{}, nopLogger{})
	uc.timeProvider = &mockTimeProvider{now: time.Date(2025, 9, 10, 17, 45, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{CategoryID: ptr.Ptr(int64(3))})

	assert.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.Equal(t, int64(3), *gotCategory)
	assert.Equal(t, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC), gotFrom)
}

func TestUseCase_Execute_OvershootFloorsToExcluded(t *testing.T) {
	calRepo := &mockCalendarRepo{
		listEligibleFunc: func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
			return []*domain.CalendarDate{
				{ID: 1, Date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), IsAvailable: true, MaxAppointments: 2},
			}, nil
		},
	}
	tracker := &mockCapacityTracker{
		remainingForFunc: func(ctx context.Context, entry *domain.CalendarDate) (int, error) {
			// Вместимость уменьшили после создания записей — трекер прижал к нулю
			return 0, nil
		},
	}
	uc := NewUseCase(calRepo, tracker, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})

	assert.NoError(t, err)
	assert.Empty(t, resp.Dates)
}
