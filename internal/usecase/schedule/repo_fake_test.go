package schedule

import (
	"context"
	"sync"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

// fakeRepo guarda tudo em memória e reproduz a semântica da trava de
// escrita: o mutex serializa recheck + insert, como no Postgres o
// lock na linha da profissional serializa a transação de escrita.
type fakeRepo struct {
	mu sync.Mutex

	user         *models.User
	services     map[uint]*models.Service
	clients      map[uint]*models.Client
	workingHours map[int]*models.WorkingHours
	blocks       []models.BlockedSlot
	bookingSlots []models.BookingTimeSlot
	appointments []*models.Appointment

	nextAppointmentID uint
	nextClientID      uint
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	r := &fakeRepo{
		user: &models.User{
			ID:       1,
			Timezone: "America/Sao_Paulo",
			Slug:     "studio-teste",
		},
		services:          make(map[uint]*models.Service),
		clients:           make(map[uint]*models.Client),
		workingHours:      make(map[int]*models.WorkingHours),
		nextAppointmentID: 1,
		nextClientID:      100,
	}

	r.services[1] = &models.Service{
		ID:          1,
		UserID:      1,
		Name:        "Lash lifting",
		DurationMin: 60,
		Active:      true,
	}

	r.clients[10] = &models.Client{ID: 10, UserID: 1, Name: "Ana"}

	// segunda a sexta, 09:00–18:00
	for wd := 1; wd <= 5; wd++ {
		r.workingHours[wd] = &models.WorkingHours{
			UserID:    1,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		}
	}

	for h := 9; h <= 17; h++ {
		r.bookingSlots = append(r.bookingSlots, models.BookingTimeSlot{
			UserID:   1,
			TimeSlot: timegrid.FormatTime(h * 60),
			Active:   true,
		})
	}

	return r
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return r.user, nil
}

func (r *fakeRepo) GetUserBySlug(ctx context.Context, slug string) (*models.User, error) {
	if r.user.Slug == slug {
		return r.user, nil
	}
	return nil, nil
}

func (r *fakeRepo) GetService(ctx context.Context, userID, serviceID uint) (*models.Service, error) {
	return r.services[serviceID], nil
}

func (r *fakeRepo) GetClient(ctx context.Context, userID, clientID uint) (*models.Client, error) {
	return r.clients[clientID], nil
}

func (r *fakeRepo) GetOrCreateClient(
	ctx context.Context,
	userID uint,
	name, phone, email string,
) (*models.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.clients {
		if c.Phone == phone && phone != "" {
			return c, nil
		}
	}

	c := &models.Client{
		ID:     r.nextClientID,
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}
	r.nextClientID++
	r.clients[c.ID] = c
	return c, nil
}

func (r *fakeRepo) GetWorkingHours(ctx context.Context, userID uint, weekday int) (*models.WorkingHours, error) {
	return r.workingHours[weekday], nil
}

func (r *fakeRepo) ListBlocks(ctx context.Context, userID uint, date string) ([]models.BlockedSlot, error) {
	out := make([]models.BlockedSlot, 0)
	for _, b := range r.blocks {
		if b.BlockedDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookingSlots(ctx context.Context, userID uint) ([]models.BookingTimeSlot, error) {
	return r.bookingSlots, nil
}

func (r *fakeRepo) ListOccupied(ctx context.Context, userID uint, date string) ([]domain.Occupied, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.occupiedLocked(date, 0), nil
}

// occupiedLocked exige r.mu.
func (r *fakeRepo) occupiedLocked(date string, excludeID uint) []domain.Occupied {
	out := make([]domain.Occupied, 0)
	for _, ap := range r.appointments {
		if ap.AppointmentDate != date || ap.ID == excludeID {
			continue
		}
		if !domain.Occupies(domain.Status(ap.Status)) {
			continue
		}

		start, err := timegrid.ParseTime(ap.AppointmentTime)
		if err != nil {
			continue
		}
		duration := 0
		if svc, ok := r.services[ap.ServiceID]; ok {
			duration = svc.DurationMin
		}

		out = append(out, domain.Occupied{
			Start:         start,
			End:           start + duration,
			AppointmentID: ap.ID,
			Status:        ap.Status,
		})
	}
	return out
}

func (r *fakeRepo) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkConflictLocked(ap, durationMin, 0); err != nil {
		return err
	}

	ap.ID = r.nextAppointmentID
	r.nextAppointmentID++

	stored := *ap
	r.appointments = append(r.appointments, &stored)
	return nil
}

func (r *fakeRepo) RescheduleAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkConflictLocked(ap, durationMin, ap.ID); err != nil {
		return err
	}

	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			stored := *ap
			r.appointments[i] = &stored
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) checkConflictLocked(
	ap *models.Appointment,
	durationMin int,
	excludeID uint,
) error {
	start, err := timegrid.ParseTime(ap.AppointmentTime)
	if err != nil {
		return err
	}
	end := start + durationMin

	for _, occ := range r.occupiedLocked(ap.AppointmentDate, excludeID) {
		if timegrid.IntervalsOverlap(start, end, occ.Start, occ.End) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
	}
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, userID, appointmentID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.UserID == userID {
			copied := *ap
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			stored := *ap
			r.appointments[i] = &stored
			return nil
		}
	}
	return httperr.ErrBusiness("appointment_not_found")
}

func (r *fakeRepo) ListForPeriod(
	ctx context.Context,
	userID uint,
	fromDate, toDate string,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.AppointmentDate >= fromDate && ap.AppointmentDate < toDate {
			copied := *ap
			if svc, ok := r.services[ap.ServiceID]; ok {
				copied.Service = *svc
			}
			if cli, ok := r.clients[ap.ClientID]; ok {
				copied.Client = *cli
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) addBlock(date string, blockedTime *string, reason string) {
	r.blocks = append(r.blocks, models.BlockedSlot{
		UserID:      1,
		BlockedDate: date,
		BlockedTime: blockedTime,
		IsFullDay:   blockedTime == nil,
		Reason:      reason,
	})
}
