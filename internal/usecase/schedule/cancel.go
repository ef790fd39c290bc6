package schedule

import (
	"context"

	"github.com/EspacoLashStudio/studio-agenda/internal/audit"
	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	inv   Invalidator
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	inv Invalidator,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		inv:   inv,
	}
}

// Cancelar libera o intervalo imediatamente para novas reservas.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(user.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if uc.inv != nil {
		uc.inv.InvalidateDay(ctx, userID, ap.AppointmentDate)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
