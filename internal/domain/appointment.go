package domain

import (
	"time"

	"github.com/m04kA/HSP-ScheduleService/pkg/types"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
)

// allowedTransitions таблица переходов статусов.
// Вход в pending возможен только при создании записи, не переходом.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is one of the closed set of states
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal returns true if no transition leaves this status
func (s AppointmentStatus) IsTerminal() bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo returns true if the transition s -> next is allowed
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment represents a booked appointment.
// Date, start time and price are copied from the chosen slot at booking time:
// the slot is a template, not a live reference.
type Appointment struct {
	ID                 int64
	UserID             int64
	ServiceDescription string
	Date               time.Time // календарный день, время обнулено
	StartTime          types.TimeString
	Location           Location
	Price              float64
	Status             AppointmentStatus
	Notes              *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location снапшот адреса на момент бронирования
type Location struct {
	AddressLine string
	City        string
	PostalCode  string
}

// IsActive returns true if the appointment holds date capacity
// (cancelled bookings free their capacity back)
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// AppointmentsFilter фильтр для административного списка записей
type AppointmentsFilter struct {
	Date            *time.Time         // Конкретная дата (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	UserID          *int64             // Фильтр по пользователю (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отменённые записи
}
