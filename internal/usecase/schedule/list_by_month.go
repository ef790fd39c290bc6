package schedule

import (
	"context"
	"fmt"
	"time"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	userID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	from := fmt.Sprintf("%04d-%02d-01", year, month)
	start, _ := time.Parse("2006-01-02", from)
	to := start.AddDate(0, 1, 0).Format("2006-01-02")

	appointments, err := uc.repo.ListForPeriod(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}
