package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, status := range []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
	} {
		assert.True(t, status.IsValid(), "status %s", status)
	}

	assert.False(t, AppointmentStatus("unknown").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
	assert.False(t, AppointmentStatus("PENDING").IsValid())
}

func TestAppointmentStatus_FullLifecycle(t *testing.T) {
	// pending -> confirmed -> in_progress -> completed
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
}

func TestAppointmentStatus_CancelPaths(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))

	// Начатые и завершённые работы уже не отменить
	assert.False(t, StatusInProgress.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelled))
}

func TestAppointmentStatus_TerminalStatesAreFinal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, next := range []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
	} {
		assert.False(t, StatusCompleted.CanTransitionTo(next), "completed -> %s", next)
		assert.False(t, StatusCancelled.CanTransitionTo(next), "cancelled -> %s", next)
	}
}

func TestAppointmentStatus_NoTransitionIntoPending(t *testing.T) {
	for _, from := range []AppointmentStatus{
		StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled,
	} {
		assert.False(t, from.CanTransitionTo(StatusPending), "%s -> pending", from)
	}
}

func TestAppointmentStatus_SkippingStatesRejected(t *testing.T) {
	assert.False(t, StatusPending.CanTransitionTo(StatusInProgress))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
}

func TestAppointment_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		appt := &Appointment{Status: status}
		assert.True(t, appt.IsActive(), "status %s", status)
	}

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
}
