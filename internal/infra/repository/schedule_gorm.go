package repository

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// notFoundAsNil: registro ausente não é falha de storage.
func notFoundAsNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return httperr.WrapStorage(err)
}

// --------------------------------------------------
// User (profissional)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

func (r *ScheduleGormRepository) GetUserBySlug(
	ctx context.Context,
	slug string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&user).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &user, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ScheduleGormRepository) GetService(
	ctx context.Context,
	userID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", serviceID, userID).
		First(&service).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &service, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	userID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &client, nil
}

func (r *ScheduleGormRepository) GetOrCreateClient(
	ctx context.Context,
	userID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND phone = ?", userID, phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.WrapStorage(err)
	}

	client = models.Client{
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Email:  email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, httperr.WrapStorage(err)
	}

	return &client, nil
}

// --------------------------------------------------
// Availability inputs
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	userID uint,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND weekday = ?", userID, weekday).
		First(&wh).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &wh, nil
}

func (r *ScheduleGormRepository) ListBlocks(
	ctx context.Context,
	userID uint,
	date string,
) ([]models.BlockedSlot, error) {

	var blocks []models.BlockedSlot
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND blocked_date = ?", userID, date).
		Find(&blocks).Error; err != nil {
		return nil, httperr.WrapStorage(err)
	}
	return blocks, nil
}

func (r *ScheduleGormRepository) ListBookingSlots(
	ctx context.Context,
	userID uint,
) ([]models.BookingTimeSlot, error) {

	var slots []models.BookingTimeSlot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time_slot ASC").
		Find(&slots).Error; err != nil {
		return nil, httperr.WrapStorage(err)
	}
	return slots, nil
}

// ListOccupied resolve os intervalos vivos do dia. A duração vem do
// join com o serviço na hora da leitura (Unscoped: serviço desativado
// por soft delete ainda precisa durar para agendamentos antigos).
func (r *ScheduleGormRepository) ListOccupied(
	ctx context.Context,
	userID uint,
	date string,
) ([]domain.Occupied, error) {

	apps, err := r.liveAppointments(ctx, r.db, userID, date)
	if err != nil {
		return nil, err
	}
	return toOccupied(apps, 0), nil
}

func (r *ScheduleGormRepository) liveAppointments(
	ctx context.Context,
	db *gorm.DB,
	userID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := db.WithContext(ctx).
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where(
			"user_id = ? AND appointment_date = ? AND status IN ?",
			userID, date,
			[]string{
				string(domain.StatusScheduled),
				string(domain.StatusConfirmed),
				string(domain.StatusCompleted),
			},
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.WrapStorage(err)
	}

	return apps, nil
}

func toOccupied(apps []models.Appointment, excludeID uint) []domain.Occupied {
	out := make([]domain.Occupied, 0, len(apps))
	for _, ap := range apps {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}

		start, err := timegrid.ParseTime(ap.AppointmentTime)
		if err != nil {
			continue
		}

		out = append(out, domain.Occupied{
			Start:         start,
			End:           timegrid.AddMinutes(start, ap.Service.DurationMin),
			AppointmentID: ap.ID,
			Status:        ap.Status,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}

// --------------------------------------------------
// Appointment (create / reschedule com trava)
// --------------------------------------------------

// CreateAppointmentChecked recheca o conflito dentro da transação,
// com as escritas da profissional serializadas — a disponibilidade
// lida antes pela interface pode ter envelhecido. Primeiro a gravar
// vence; o segundo recebe slot_conflict e reconsulta.
func (r *ScheduleGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {
	return r.writeChecked(ctx, ap, durationMin, 0, func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *ScheduleGormRepository) RescheduleAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
) error {
	return r.writeChecked(ctx, ap, durationMin, ap.ID, func(tx *gorm.DB) error {
		return tx.Save(ap).Error
	})
}

func (r *ScheduleGormRepository) writeChecked(
	ctx context.Context,
	ap *models.Appointment,
	durationMin int,
	excludeID uint,
	write func(tx *gorm.DB) error,
) error {

	start, err := timegrid.ParseTime(ap.AppointmentTime)
	if err != nil {
		return err
	}
	end := timegrid.AddMinutes(start, durationMin)

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Serializa as escritas da profissional pelo lock na linha
		// dela: FOR UPDATE nas linhas do dia não enxerga um INSERT
		// concorrente ainda não commitado, então o recheck só vale
		// depois que a escrita rival terminou. Quem espera aqui relê
		// o dia já com o agendamento vencedor.
		var owner models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, ap.UserID).Error; err != nil {
			return err
		}

		apps, err := r.liveAppointments(ctx, tx, ap.UserID, ap.AppointmentDate)
		if err != nil {
			return err
		}

		for _, occ := range toOccupied(apps, excludeID) {
			if timegrid.IntervalsOverlap(start, end, occ.Start, occ.End) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
		}

		return write(tx)
	})

	if err != nil {
		var be httperr.BusinessError
		if errors.As(err, &be) {
			return err
		}
		// índice único parcial do banco: perdeu a corrida fora da trava
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return httperr.WrapStorage(err)
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change / listagem)
// --------------------------------------------------

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where("id = ? AND user_id = ?", appointmentID, userID).
		First(&ap).Error; err != nil {
		return nil, notFoundAsNil(err)
	}

	return &ap, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return httperr.WrapStorage(err)
	}
	return nil
}

func (r *ScheduleGormRepository) ListForPeriod(
	ctx context.Context,
	userID uint,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Where(
			"user_id = ? AND appointment_date >= ? AND appointment_date < ?",
			userID,
			fromDate,
			toDate,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, httperr.WrapStorage(err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
