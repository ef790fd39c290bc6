package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()
	createOn(t, repo, monday, "10:00", 1)
	createOn(t, repo, monday, "14:00", 1)
	createOn(t, repo, "2026-09-08", "10:00", 1)

	uc := NewListAppointmentsByDate(repo)
	list, err := uc.Execute(context.Background(), 1, monday)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "10:00", list[0].StartTime)
	assert.Equal(t, "11:00", list[0].EndTime) // derivado da duração do serviço
	assert.Equal(t, "Ana", list[0].ClientName)
	assert.Equal(t, "Lash lifting", list[0].ServiceName)
}

func TestListAppointmentsByDate_InvalidDate(t *testing.T) {
	repo := newFakeRepo()

	uc := NewListAppointmentsByDate(repo)
	_, err := uc.Execute(context.Background(), 1, "07/09/2026")
	assert.Error(t, err)
}

func TestListAppointmentsByMonth(t *testing.T) {
	repo := newFakeRepo()
	createOn(t, repo, "2026-09-07", "10:00", 1)
	createOn(t, repo, "2026-09-30", "10:00", 1)
	createOn(t, repo, "2026-10-01", "10:00", 1)

	uc := NewListAppointmentsByMonth(repo)
	list, err := uc.Execute(context.Background(), 1, 2026, 9)
	require.NoError(t, err)

	assert.Len(t, list, 2)
}
