package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
)

// segunda-feira dentro do expediente seedado (seg–sex 09:00–18:00)
const monday = "2026-09-07"

func availabilityOn(t *testing.T, repo *fakeRepo, date string) *domain.AvailabilityResult {
	t.Helper()

	uc := NewGetAvailability(repo, nil)
	result, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		UserID:    1,
		ServiceID: 1,
		Date:      date,
	})
	require.NoError(t, err)
	return result
}

func starts(result *domain.AvailabilityResult) []string {
	out := make([]string, 0, len(result.Slots))
	for _, s := range result.Slots {
		out = append(out, s.Start)
	}
	return out
}

func TestGetAvailability_OpenDay(t *testing.T) {
	repo := newFakeRepo()

	result := availabilityOn(t, repo, monday)

	require.Empty(t, result.Reason)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}, starts(result))

	// término = início + duração corrente do serviço
	assert.Equal(t, "10:00", result.Slots[0].End)
}

func TestGetAvailability_DayClosed(t *testing.T) {
	repo := newFakeRepo()

	// 2026-09-06 é domingo, sem expediente
	result := availabilityOn(t, repo, "2026-09-06")

	assert.Empty(t, result.Slots)
	assert.Equal(t, domain.ReasonDayClosed, result.Reason)
}

func TestGetAvailability_FullDayBlock(t *testing.T) {
	repo := newFakeRepo()
	repo.addBlock(monday, nil, "feriado")

	result := availabilityOn(t, repo, monday)

	assert.Empty(t, result.Slots)
	assert.Equal(t, domain.ReasonDayBlocked, result.Reason)
}

func TestGetAvailability_PointBlock(t *testing.T) {
	repo := newFakeRepo()
	ten := "10:00"
	repo.addBlock(monday, &ten, "almoço")

	result := availabilityOn(t, repo, monday)

	assert.NotContains(t, starts(result), "10:00")
	assert.Contains(t, starts(result), "09:00")
	assert.Contains(t, starts(result), "11:00")
}

func TestGetAvailability_NoBookingSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.bookingSlots = nil

	result := availabilityOn(t, repo, monday)

	assert.Empty(t, result.Slots)
	assert.Equal(t, domain.ReasonNoBookingSlots, result.Reason)
}

func TestGetAvailability_InactiveSlotIgnored(t *testing.T) {
	repo := newFakeRepo()
	for i := range repo.bookingSlots {
		if repo.bookingSlots[i].TimeSlot == "09:00" {
			repo.bookingSlots[i].Active = false
		}
	}

	result := availabilityOn(t, repo, monday)
	assert.NotContains(t, starts(result), "09:00")
}

func TestGetAvailability_AppointmentOccupiesInterval(t *testing.T) {
	repo := newFakeRepo()

	// serviço de 90min às 10:00 ocupa [10:00, 11:30) e derruba
	// os candidatos 10:00 e 11:00
	repo.services[2] = &fakeLongService
	createOn(t, repo, monday, "10:00", 2)

	result := availabilityOn(t, repo, monday)

	assert.NotContains(t, starts(result), "10:00")
	assert.NotContains(t, starts(result), "11:00")
	assert.Contains(t, starts(result), "09:00")
	assert.Contains(t, starts(result), "12:00")
}

func TestGetAvailability_CancelledFreesSlot(t *testing.T) {
	repo := newFakeRepo()

	ap := createOn(t, repo, monday, "10:00", 1)
	assert.NotContains(t, starts(availabilityOn(t, repo, monday)), "10:00")

	cancelUC := NewCancelAppointment(repo, nil, nil)
	_, err := cancelUC.Execute(context.Background(), 1, ap.ID)
	require.NoError(t, err)

	assert.Contains(t, starts(availabilityOn(t, repo, monday)), "10:00")
}

func TestGetAvailability_CompletedStillOccupies(t *testing.T) {
	repo := newFakeRepo()

	ap := createOn(t, repo, monday, "10:00", 1)

	completeUC := NewCompleteAppointment(repo, nil)
	_, err := completeUC.Execute(context.Background(), CompleteAppointmentInput{
		UserID:        1,
		AppointmentID: ap.ID,
		FinalPrice:    100,
	})
	require.NoError(t, err)

	assert.NotContains(t, starts(availabilityOn(t, repo, monday)), "10:00")
}

func TestGetAvailability_ServiceInactive(t *testing.T) {
	repo := newFakeRepo()
	repo.services[1].Active = false

	uc := NewGetAvailability(repo, nil)
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		UserID:    1,
		ServiceID: 1,
		Date:      monday,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceInactive))
}

func TestGetAvailability_ServiceNotFound(t *testing.T) {
	repo := newFakeRepo()

	uc := NewGetAvailability(repo, nil)
	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		UserID:    1,
		ServiceID: 99,
		Date:      monday,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}
