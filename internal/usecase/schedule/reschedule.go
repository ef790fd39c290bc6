package schedule

import (
	"context"

	"github.com/EspacoLashStudio/studio-agenda/internal/audit"
	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/metrics"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
	"github.com/EspacoLashStudio/studio-agenda/internal/timezone"
)

type RescheduleAppointmentInput struct {
	UserID        uint
	AppointmentID uint
	NewDate       string
	NewTime       string
}

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	inv   Invalidator
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	inv Invalidator,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		inv:   inv,
	}
}

// Mesma validação da criação, mas o intervalo anterior do próprio
// agendamento fica fora do conjunto de conflito.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(user.Timezone)

	ap, err := uc.repo.GetAppointment(ctx, in.UserID, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if ap == nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	start, err := timegrid.ParseTime(in.NewTime)
	if err != nil {
		return nil, err
	}

	weekday, err := domain.Weekday(in.NewDate, loc)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.UserID, ap.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	blockRows, err := uc.repo.ListBlocks(ctx, in.UserID, in.NewDate)
	if err != nil {
		return nil, err
	}
	if domain.BuildDayBlocks(blockRows).IsBlockedAt(timegrid.FormatTime(start)) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotBlocked)
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.UserID, weekday)
	if err != nil {
		return nil, err
	}

	window, open := domain.WindowFromRecord(wh)
	if !open || !window.Contains(start) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	oldDate := ap.AppointmentDate
	ap.AppointmentDate = in.NewDate
	ap.AppointmentTime = timegrid.FormatTime(start)

	if err := uc.repo.RescheduleAppointmentChecked(ctx, ap, service.DurationMin); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	if uc.inv != nil {
		uc.inv.InvalidateDay(ctx, in.UserID, oldDate)
		uc.inv.InvalidateDay(ctx, in.UserID, in.NewDate)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": oldDate,
			"to":   in.NewDate,
		},
	})

	return ap, nil
}
