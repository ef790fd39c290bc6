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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	// ClientID preenchido no balcão; a página pública manda contato
	ClientID    uint
	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Price *float64
	Notes string

	Source string // "staff" | "public"
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	inv   Invalidator
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	inv Invalidator,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		inv:   inv,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// A disponibilidade consultada antes pode estar velha: tudo é
// revalidado aqui, e o conflito de intervalo é rechecado dentro da
// transação de escrita. Quem perder a corrida recebe slot_conflict.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(user.Timezone)

	// 1️⃣ Horário bem formado
	start, err := timegrid.ParseTime(in.Time)
	if err != nil {
		return nil, err
	}

	weekday, err := domain.Weekday(in.Date, loc)
	if err != nil {
		return nil, err
	}

	// 2️⃣ Serviço
	service, err := uc.repo.GetService(ctx, in.UserID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}
	if !service.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceInactive)
	}

	// 3️⃣ Bloqueios: dia inteiro ou o ponto exato
	blockRows, err := uc.repo.ListBlocks(ctx, in.UserID, in.Date)
	if err != nil {
		return nil, err
	}
	if domain.BuildDayBlocks(blockRows).IsBlockedAt(timegrid.FormatTime(start)) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotBlocked)
	}

	// 4️⃣ Expediente
	wh, err := uc.repo.GetWorkingHours(ctx, in.UserID, weekday)
	if err != nil {
		return nil, err
	}

	window, open := domain.WindowFromRecord(wh)
	if !open || !window.Contains(start) {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideWorkingHours)
	}

	// 5️⃣ Cliente
	client, err := uc.resolveClient(ctx, in)
	if err != nil {
		return nil, err
	}

	price := 0.0
	if in.Price != nil {
		price = *in.Price
	} else if service.SuggestedPrice != nil {
		price = *service.SuggestedPrice
	}

	// 6️⃣ Criação com recheck de conflito dentro da transação
	ap := &models.Appointment{
		UserID:          in.UserID,
		ClientID:        client.ID,
		ServiceID:       service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: timegrid.FormatTime(start),
		Price:           price,
		Status:          string(domain.InitialStatus()),
		PaymentStatus:   models.PaymentStatusPending,

		IncludeSalonPercentage: service.IncludeSalonPercentage,
		SalonPercentage:        service.SalonPercentage,

		Notes: in.Notes,
	}

	if err := uc.repo.CreateAppointmentChecked(ctx, ap, service.DurationMin); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotConflict) {
			metrics.SlotConflicts.Inc()

			uc.audit.Dispatch(audit.Event{
				UserID: &in.UserID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	metrics.AppointmentsCreated.WithLabelValues(in.Source).Inc()

	if uc.inv != nil {
		uc.inv.InvalidateDay(ctx, in.UserID, in.Date)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveClient(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Client, error) {

	if in.ClientID != 0 {
		client, err := uc.repo.GetClient(ctx, in.UserID, in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return client, nil
	}

	return uc.repo.GetOrCreateClient(
		ctx,
		in.UserID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
}
