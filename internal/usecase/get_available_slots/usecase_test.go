package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	calendarRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/calendar"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
)

type mockCalendarRepo struct {
	resolveForDateFunc func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

func (m *mockCalendarRepo) ResolveForDate(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	return m.resolveForDateFunc(ctx, date, categoryID)
}

type mockSlotRepo struct {
	listByDateFunc func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error)
}

func (m *mockSlotRepo) ListByDate(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
	return m.listByDateFunc(ctx, filter)
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

var (
	testNow  = time.Date(2025, 9, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(calRepo CalendarRepository, slots SlotRepository) *UseCase {
	uc := NewUseCase(calRepo, slots, nopLogger{})
	uc.timeProvider = &mockTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_ReturnsAvailableSlots(t *testing.T) {
	calRepo := &mockCalendarRepo{
		resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			assert.True(t, filter.OnlyAvailable)
			return []*domain.TimeSlot{
				{ID: 1, Date: filter.Date, StartTime: "09:00", EndTime: "10:00", IsAvailable: true, ExtraPrice: 150},
				{ID: 2, Date: filter.Date, StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
			}, nil
		},
	}
	uc := newTestUseCase(calRepo, slots)

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	assert.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
	assert.Equal(t, float64(150), resp.Slots[0].ExtraPrice)
}

func TestUseCase_Execute_NoCalendarEntryMeansEmpty(t *testing.T) {
	calRepo := &mockCalendarRepo{
		resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return nil, calendarRepo.ErrDateNotFound
		},
	}
	uc := newTestUseCase(calRepo, &mockSlotRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	// Дня нет в календаре — пустой список, не ошибка
	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_ClosedDateMeansEmpty(t *testing.T) {
	calRepo := &mockCalendarRepo{
		resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: false, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(calRepo, &mockSlotRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate})

	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_PastDateMeansEmpty(t *testing.T) {
	calRepo := &mockCalendarRepo{
		resolveForDateFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(calRepo, &mockSlotRepo{})

	// Вчерашний день слотов не предлагает
	resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, -1)})

	assert.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_MissingDate(t *testing.T) {
	uc := newTestUseCase(&mockCalendarRepo{}, &mockSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
