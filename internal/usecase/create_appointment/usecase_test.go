package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HSP-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/HSP-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/HSP-ScheduleService/internal/service/capacity"
	"github.com/m04kA/HSP-ScheduleService/pkg/ptr"
)

type mockAppointmentRepo struct {
	createFunc func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return m.createFunc(ctx, appt)
}

type mockSlotRepo struct {
	listByDateFunc func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error)
}

func (m *mockSlotRepo) ListByDate(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
	return m.listByDateFunc(ctx, filter)
}

type mockCapacityTracker struct {
	reserveFunc func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error)
}

func (m *mockCapacityTracker) Reserve(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
	return m.reserveFunc(ctx, date, categoryID)
}

// mockTxManager имитирует сериализуемую изоляцию: транзакции выполняются
// строго последовательно под мьютексом.
type mockTxManager struct {
	mu sync.Mutex
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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
	testNow  = time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		UserID:             100,
		ServiceDescription: "Замена смесителя",
		Date:               testDate,
		StartTime:          "09:00",
		Location: Location{
			AddressLine: "ул. Ленина, д. 1",
			City:        "Москва",
		},
		BasePrice: 1000,
	}
}

func testSlots() []*domain.TimeSlot {
	return []*domain.TimeSlot{
		{ID: 1, Date: testDate, StartTime: "09:00", EndTime: "10:00", IsAvailable: true, ExtraPrice: 500},
		{ID: 2, Date: testDate, StartTime: "10:00", EndTime: "11:00", IsAvailable: true, ExtraPrice: 0},
	}
}

func newTestUseCase(
	apptRepo AppointmentRepository,
	slots SlotRepository,
	tracker CapacityTracker,
	tx TransactionManager,
) *UseCase {
	uc := NewUseCase(apptRepo, slots, tracker, tx, nopLogger{})
	uc.timeProvider = &mockTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			created := *appt
			created.ID = 42
			return &created, nil
		},
	}
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			assert.True(t, filter.OnlyAvailable)
			return testSlots(), nil
		},
	}
	tracker := &mockCapacityTracker{
		reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(apptRepo, slots, tracker, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	// Доплата за слот входит в итоговую цену
	assert.Equal(t, float64(1500), resp.Price)
}

func TestUseCase_Execute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockSlotRepo{}, &mockCapacityTracker{}, &mockTxManager{})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUseCase_Execute_TodayIsBookable(t *testing.T) {
	apptRepo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return appt, nil
		},
	}
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			return testSlots(), nil
		},
	}
	tracker := &mockCapacityTracker{
		reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(apptRepo, slots, tracker, &mockTxManager{})

	req := validRequest()
	// Сегодняшний день проходит, даже если текущее время уже за полдень
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
}

func TestUseCase_Execute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockSlotRepo{}, &mockCapacityTracker{}, &mockTxManager{})

	cases := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"empty description", func(r *Request) { r.ServiceDescription = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"bad start time", func(r *Request) { r.StartTime = "9am" }},
		{"empty address", func(r *Request) { r.Location.AddressLine = "" }},
		{"empty city", func(r *Request) { r.Location.City = "" }},
		{"negative base price", func(r *Request) { r.BasePrice = -10 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_DateNotBookable(t *testing.T) {
	cases := []struct {
		name       string
		trackerErr error
	}{
		{"no calendar entry", capacity.ErrDateNotFound},
		{"date closed", capacity.ErrDateNotAvailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tracker := &mockCapacityTracker{
				reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
					return nil, tc.trackerErr
				},
			}
			uc := newTestUseCase(&mockAppointmentRepo{}, &mockSlotRepo{}, tracker, &mockTxManager{})

			_, err := uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrDateNotBookable)
		})
	}
}

func TestUseCase_Execute_SlotNotBookable(t *testing.T) {
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			return testSlots(), nil
		},
	}
	tracker := &mockCapacityTracker{
		reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(&mockAppointmentRepo{}, slots, tracker, &mockTxManager{})

	req := validRequest()
	// На 11:00 слота нет
	req.StartTime = "11:00"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotBookable)
}

func TestUseCase_Execute_ScopedSlotResolution(t *testing.T) {
	var gotCategory *int64
	apptRepo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return appt, nil
		},
	}
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			gotCategory = filter.CategoryID
			return testSlots(), nil
		},
	}
	tracker := &mockCapacityTracker{
		reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: 5}, nil
		},
	}
	uc := newTestUseCase(apptRepo, slots, tracker, &mockTxManager{})

	req := validRequest()
	req.CategoryID = ptr.Ptr(int64(3))

	_, err := uc.Execute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), *gotCategory)
}

// Конкурентное резервирование: при вместимости k из N параллельных запросов
// должны пройти ровно k, остальные — получить ErrCapacityExhausted.
func TestUseCase_Execute_ConcurrentReservations(t *testing.T) {
	const (
		maxAppointments = 3
		parallel        = 10
	)

	var (
		stateMu sync.Mutex
		created int
		nextID  int64
	)

	apptRepo := &mockAppointmentRepo{
		createFunc: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			stateMu.Lock()
			defer stateMu.Unlock()
			created++
			nextID++
			result := *appt
			result.ID = nextID
			return &result, nil
		},
	}
	slots := &mockSlotRepo{
		listByDateFunc: func(ctx context.Context, filter slotRepo.ListFilter) ([]*domain.TimeSlot, error) {
			return testSlots(), nil
		},
	}
	// Трекер ведёт себя как настоящий: сравнивает число созданных записей
	// с вместимостью. Последовательность гарантирует mockTxManager.
	tracker := &mockCapacityTracker{
		reserveFunc: func(ctx context.Context, date time.Time, categoryID *int64) (*domain.CalendarDate, error) {
			stateMu.Lock()
			defer stateMu.Unlock()
			if created >= maxAppointments {
				return nil, capacity.ErrCapacityExhausted
			}
			return &domain.CalendarDate{ID: 1, Date: date, IsAvailable: true, MaxAppointments: maxAppointments}, nil
		},
	}
	uc := newTestUseCase(apptRepo, slots, tracker, &mockTxManager{})

	var wg sync.WaitGroup
	results := make(chan error, parallel)

	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			results <- err
		}()
	}

	wg.Wait()
	close(results)

	var succeeded, exhausted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrCapacityExhausted):
			exhausted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, maxAppointments, succeeded)
	assert.Equal(t, parallel-maxAppointments, exhausted)
	assert.Equal(t, maxAppointments, created)
}
