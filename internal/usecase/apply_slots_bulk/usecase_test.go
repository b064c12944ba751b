package apply_slots_bulk

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotModels "github.com/m04kA/HSP-ScheduleService/internal/service/slots/models"
	"github.com/m04kA/HSP-ScheduleService/pkg/ptr"
)

type mockSlotService struct {
	addSlotFunc func(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error)
}

func (m *mockSlotService) AddSlot(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error) {
	return m.addSlotFunc(ctx, req)
}

type mockCalendarRepo struct {
	listEligibleFunc func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error)
}

func (m *mockCalendarRepo) ListEligible(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
	return m.listEligibleFunc(ctx, categoryID, fromDate)
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

func date(day int) time.Time {
	return time.Date(2025, 9, day, 0, 0, 0, 0, time.UTC)
}

func validRequest(targets ...time.Time) *Request {
	return &Request{
		StartTime:   "09:00",
		EndTime:     "10:00",
		IsAvailable: true,
		ExtraPrice:  100,
		TargetDates: targets,
	}
}

func TestUseCase_Execute_AllSucceed(t *testing.T) {
	var gotDates []string
	slotSvc := &mockSlotService{
		addSlotFunc: func(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error) {
			gotDates = append(gotDates, req.Date.Format(domain.DateFormat))
			return &slotModels.SlotResponse{ID: int64(len(gotDates))}, nil
		},
	}
	uc := NewUseCase(slotSvc, &mockCalendarRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(date(15), date(16), date(17)))

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-09-15", "2025-09-16", "2025-09-17"}, resp.Succeeded)
	assert.Empty(t, resp.Failed)
	assert.Equal(t, []string{"2025-09-15", "2025-09-16", "2025-09-17"}, gotDates)
}

func TestUseCase_Execute_PartialFailure(t *testing.T) {
	slotSvc := &mockSlotService{
		addSlotFunc: func(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error) {
			if req.Date.Day() == 16 {
				return nil, errors.New("time slot overlaps existing slot")
			}
			return &slotModels.SlotResponse{ID: 1}, nil
		},
	}
	uc := NewUseCase(slotSvc, &mockCalendarRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest(date(15), date(16), date(17)))

	// Частичный отказ — не отказ батча
	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-09-15", "2025-09-17"}, resp.Succeeded)
	assert.Len(t, resp.Failed, 1)
	assert.Equal(t, "2025-09-16", resp.Failed[0].Date)
	assert.Equal(t, "time slot overlaps existing slot", resp.Failed[0].Reason)
}

func TestUseCase_Execute_EmptyTargetsDefaultsToEligibleDates(t *testing.T) {
	var gotFrom time.Time
	var gotCategory *int64
	calRepo := &mockCalendarRepo{
		listEligibleFunc: func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
			gotFrom = fromDate
			gotCategory = categoryID
			return []*domain.CalendarDate{
				{ID: 1, Date: date(20)},
				{ID: 2, Date: date(21)},
			}, nil
		},
	}
	created := 0
	slotSvc := &mockSlotService{
		addSlotFunc: func(ctx context.Context, req *slotModels.AddSlotRequest) (*slotModels.SlotResponse, error) {
			created++
			return &slotModels.SlotResponse{ID: int64(created)}, nil
		},
	}
	uc := NewUseCase(slotSvc, calRepo, nopLogger{})
	uc.timeProvider = &mockTimeProvider{now: time.Date(2025, 9, 18, 15, 30, 0, 0, time.UTC)}

	req := validRequest()
	req.CategoryID = ptr.Ptr(int64(3))

	resp, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-09-20", "2025-09-21"}, resp.Succeeded)
	assert.Equal(t, 2, created)
	// Отбор идёт от сегодняшнего дня в области видимости категории шаблона
	assert.Equal(t, date(18), gotFrom)
	assert.Equal(t, int64(3), *gotCategory)
}

func TestUseCase_Execute_NoTargetDates(t *testing.T) {
	calRepo := &mockCalendarRepo{
		listEligibleFunc: func(ctx context.Context, categoryID *int64, fromDate time.Time) ([]*domain.CalendarDate, error) {
			return []*domain.CalendarDate{}, nil
		},
	}
	uc := NewUseCase(&mockSlotService{}, calRepo, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrNoTargetDates)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(&mockSlotService{}, &mockCalendarRepo{}, nopLogger{})

	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing times", func(r *Request) { r.StartTime = "" }},
		{"reversed window", func(r *Request) { r.StartTime = "11:00"; r.EndTime = "10:00" }},
		{"bad time format", func(r *Request) { r.StartTime = "9am" }},
		{"negative extra price", func(r *Request) { r.ExtraPrice = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(date(15))
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
