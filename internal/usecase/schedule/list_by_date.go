package schedule

import (
	"context"
	"time"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/dto"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/models"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	userID uint,
	date string,
) ([]dto.AppointmentListDTO, error) {

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	next := d.AddDate(0, 0, 1).Format("2006-01-02")

	appointments, err := uc.repo.ListForPeriod(ctx, userID, date, next)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// O término é derivado na leitura: hora + duração atual do serviço.
func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.AppointmentDate,
			StartTime:   ap.AppointmentTime,
			EndTime:     buildEndTime(ap.AppointmentTime, ap.Service.DurationMin),
			Status:      ap.Status,
			Price:       ap.Price,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
			DurationMin: ap.Service.DurationMin,
		})
	}
	return out
}

func buildEndTime(startTime string, durationMin int) string {
	start, err := timegrid.ParseTime(startTime)
	if err != nil {
		return ""
	}
	return timegrid.FormatTime(timegrid.AddMinutes(start, durationMin))
}
