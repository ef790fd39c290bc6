package schedule

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

var fakeLongService = models.Service{
	ID:          2,
	UserID:      1,
	Name:        "Volume brasileiro",
	DurationMin: 90,
	Active:      true,
}

func createOn(t *testing.T, repo *fakeRepo, date, timeStr string, serviceID uint) *models.Appointment {
	t.Helper()

	ap, err := createAttempt(repo, date, timeStr, serviceID)
	require.NoError(t, err)
	return ap
}

func createAttempt(repo *fakeRepo, date, timeStr string, serviceID uint) (*models.Appointment, error) {
	uc := NewCreateAppointment(repo, nil, nil)
	return uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:    1,
		ClientID:  10,
		ServiceID: serviceID,
		Date:      date,
		Time:      timeStr,
		Source:    "staff",
	})
}

func TestCreateAppointment_OK(t *testing.T) {
	repo := newFakeRepo()

	ap := createOn(t, repo, monday, "10:00", 1)

	assert.NotZero(t, ap.ID)
	assert.Equal(t, monday, ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, models.PaymentStatusPending, ap.PaymentStatus)
}

func TestCreateAppointment_NormalizesTime(t *testing.T) {
	repo := newFakeRepo()

	ap := createOn(t, repo, monday, "10:00:00", 1)
	assert.Equal(t, "10:00", ap.AppointmentTime)
}

func TestCreateAppointment_InvalidTime(t *testing.T) {
	repo := newFakeRepo()

	_, err := createAttempt(repo, monday, "10h00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTimeFormat))
}

func TestCreateAppointment_ServiceNotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := createAttempt(repo, monday, "10:00", 99)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestCreateAppointment_ServiceInactive(t *testing.T) {
	repo := newFakeRepo()
	repo.services[1].Active = false

	_, err := createAttempt(repo, monday, "10:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceInactive))
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()

	_, err := createAttempt(repo, monday, "08:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours))

	// fechamento é exclusivo
	_, err = createAttempt(repo, monday, "18:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours))

	// domingo não tem expediente
	_, err = createAttempt(repo, "2026-09-06", "10:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeOutsideWorkingHours))
}

// O início dentro da janela basta: o término pode passar do fechamento.
func TestCreateAppointment_StartInsideWindowSuffices(t *testing.T) {
	repo := newFakeRepo()
	repo.services[2] = &fakeLongService

	ap := createOn(t, repo, monday, "17:00", 2) // termina 18:30
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointment_BlockedSlot(t *testing.T) {
	repo := newFakeRepo()
	ten := "10:00"
	repo.addBlock(monday, &ten, "almoço")

	_, err := createAttempt(repo, monday, "10:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotBlocked))
}

func TestCreateAppointment_FullDayBlock(t *testing.T) {
	repo := newFakeRepo()
	repo.addBlock(monday, nil, "feriado")

	_, err := createAttempt(repo, monday, "10:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotBlocked))
}

func TestCreateAppointment_Conflict(t *testing.T) {
	repo := newFakeRepo()

	createOn(t, repo, monday, "10:00", 1)

	_, err := createAttempt(repo, monday, "10:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestCreateAppointment_PartialOverlapConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.services[2] = &fakeLongService

	// 90min às 10:00 ocupa [10:00, 11:30); 11:00 colide
	createOn(t, repo, monday, "10:00", 2)

	_, err := createAttempt(repo, monday, "11:00", 1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

// Extremos encostados não conflitam: 10:00–11:00 e 11:00–12:00 convivem.
func TestCreateAppointment_BackToBack(t *testing.T) {
	repo := newFakeRepo()

	createOn(t, repo, monday, "10:00", 1)
	ap := createOn(t, repo, monday, "11:00", 1)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointment_SameSlotOtherDate(t *testing.T) {
	repo := newFakeRepo()

	createOn(t, repo, monday, "10:00", 1)
	ap := createOn(t, repo, "2026-09-08", "10:00", 1)
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointment_AfterCancellation(t *testing.T) {
	repo := newFakeRepo()

	first := createOn(t, repo, monday, "10:00", 1)

	cancelUC := NewCancelAppointment(repo, nil, nil)
	_, err := cancelUC.Execute(context.Background(), 1, first.ID)
	require.NoError(t, err)

	second := createOn(t, repo, monday, "10:00", 1)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateAppointment_SuggestedPriceDefault(t *testing.T) {
	repo := newFakeRepo()
	price := 150.0
	repo.services[1].SuggestedPrice = &price

	ap := createOn(t, repo, monday, "10:00", 1)
	assert.Equal(t, 150.0, ap.Price)
}

func TestCreateAppointment_PublicContactCreatesClient(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCreateAppointment(repo, nil, nil)
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		UserID:      1,
		ClientName:  "Beatriz",
		ClientPhone: "11999990000",
		ServiceID:   1,
		Date:        monday,
		Time:        "14:00",
		Source:      "public",
	})
	require.NoError(t, err)

	client, err := repo.GetClient(context.Background(), 1, ap.ClientID)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "Beatriz", client.Name)
}

// Duas tentativas simultâneas no mesmo horário: exatamente uma vence,
// a outra recebe slot_conflict.
func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	repo := newFakeRepo()

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = createAttempt(repo, monday, "10:00", 1)
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, conflicts)
}

// Corrida com inícios diferentes mas intervalos sobrepostos: 10:00
// por 90min e 11:00 por 60min colidem em [11:00, 11:30). A trava de
// escrita serializa os dois; só um pode commitar.
func TestCreateAppointment_ConcurrentOverlappingIntervals(t *testing.T) {
	repo := newFakeRepo()
	repo.services[2] = &fakeLongService

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = createAttempt(repo, monday, "10:00", 2)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = createAttempt(repo, monday, "11:00", 1)
	}()
	wg.Wait()

	wins, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, httperr.CodeSlotConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, conflicts)
}
