package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
)

func TestRescheduleAppointment_OK(t *testing.T) {
	repo := newFakeRepo()
	ap := createOn(t, repo, monday, "10:00", 1)

	uc := NewRescheduleAppointment(repo, nil, nil)
	moved, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: ap.ID,
		NewDate:       "2026-09-08",
		NewTime:       "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-09-08", moved.AppointmentDate)
	assert.Equal(t, "14:00", moved.AppointmentTime)

	// o horário antigo volta a ficar livre
	assert.Contains(t, starts(availabilityOn(t, repo, monday)), "10:00")
}

// O próprio intervalo fica fora do conjunto de conflito: mover para
// um horário que encosta no atual não colide consigo mesmo.
func TestRescheduleAppointment_ExcludesSelf(t *testing.T) {
	repo := newFakeRepo()
	ap := createOn(t, repo, monday, "10:00", 1)

	uc := NewRescheduleAppointment(repo, nil, nil)
	moved, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: ap.ID,
		NewDate:       monday,
		NewTime:       "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, "10:30", moved.AppointmentTime)
}

func TestRescheduleAppointment_Conflict(t *testing.T) {
	repo := newFakeRepo()
	createOn(t, repo, monday, "10:00", 1)
	other := createOn(t, repo, monday, "14:00", 1)

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: other.ID,
		NewDate:       monday,
		NewTime:       "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestRescheduleAppointment_OutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	ap := createOn(t, repo, monday, "10:00", 1)

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: ap.ID,
		NewDate:       "2026-09-06", // domingo
		NewTime:       "10:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours))
}

func TestRescheduleAppointment_TerminalStates(t *testing.T) {
	repo := newFakeRepo()
	ap := createOn(t, repo, monday, "10:00", 1)

	cancelUC := NewCancelAppointment(repo, nil, nil)
	_, err := cancelUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err = uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: ap.ID,
		NewDate:       monday,
		NewTime:       "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestRescheduleAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewRescheduleAppointment(repo, nil, nil)
	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		UserID:        1,
		AppointmentID: 99,
		NewDate:       monday,
		NewTime:       "14:00",
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
