package schedule

import (
	"context"

	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

type Repository interface {
	// -------- User (profissional) --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserBySlug(
		ctx context.Context,
		slug string,
	) (*models.User, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		userID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		userID uint,
		clientID uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		userID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Availability inputs --------
	GetWorkingHours(
		ctx context.Context,
		userID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBlocks(
		ctx context.Context,
		userID uint,
		date string,
	) ([]models.BlockedSlot, error)

	ListBookingSlots(
		ctx context.Context,
		userID uint,
	) ([]models.BookingTimeSlot, error)

	ListOccupied(
		ctx context.Context,
		userID uint,
		date string,
	) ([]Occupied, error)

	// -------- Appointment (create / reschedule com trava) --------
	CreateAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
		durationMin int,
	) error

	RescheduleAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
		durationMin int,
	) error

	// -------- Appointment (state change / listagem) --------
	GetAppointment(
		ctx context.Context,
		userID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListForPeriod(
		ctx context.Context,
		userID uint,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)
}
