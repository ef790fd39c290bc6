package schedule

import (
	"context"
	"sort"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
	"github.com/EspacoLashStudio/studio-agenda/internal/httperr"
	"github.com/EspacoLashStudio/studio-agenda/internal/metrics"
	"github.com/EspacoLashStudio/studio-agenda/internal/timegrid"
	"github.com/EspacoLashStudio/studio-agenda/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute resolve os horários reserváveis de uma data para um serviço:
// catálogo de horários públicos filtrado por expediente, bloqueios e
// agendamentos vivos. Lista vazia carrega o motivo — a interface trata
// "fechado" diferente de "lotado".
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	if uc.cache != nil {
		if cached, ok := uc.cache.Get(ctx, in.UserID, in.Date, in.ServiceID); ok {
			metrics.AvailabilityQueries.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}
	metrics.AvailabilityQueries.WithLabelValues("miss").Inc()

	user, err := uc.repo.GetUserByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(user.Timezone)

	// 1️⃣ Serviço
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

	// 2️⃣ Bloqueio de dia inteiro encerra a conversa
	blockRows, err := uc.repo.ListBlocks(ctx, in.UserID, in.Date)
	if err != nil {
		return nil, err
	}
	blocks := domain.BuildDayBlocks(blockRows)

	if blocks.FullDay {
		return uc.done(ctx, in, &domain.AvailabilityResult{
			Slots:  []domain.TimeSlot{},
			Reason: domain.ReasonDayBlocked,
		}), nil
	}

	// 3️⃣ Expediente do dia da semana
	weekday, err := domain.Weekday(in.Date, loc)
	if err != nil {
		return nil, err
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.UserID, weekday)
	if err != nil {
		return nil, err
	}

	window, open := domain.WindowFromRecord(wh)
	if !open {
		return uc.done(ctx, in, &domain.AvailabilityResult{
			Slots:  []domain.TimeSlot{},
			Reason: domain.ReasonDayClosed,
		}), nil
	}

	// 4️⃣ Catálogo de horários públicos. Sem catálogo não há fallback
	// para o expediente: ausência explícita = "sem agendamento online".
	catalog, err := uc.repo.ListBookingSlots(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	candidates := make([]int, 0, len(catalog))
	for _, slot := range catalog {
		if !slot.Active {
			continue
		}
		minutes, err := timegrid.ParseTime(slot.TimeSlot)
		if err != nil {
			continue
		}
		candidates = append(candidates, minutes)
	}

	if len(candidates) == 0 {
		return uc.done(ctx, in, &domain.AvailabilityResult{
			Slots:  []domain.TimeSlot{},
			Reason: domain.ReasonNoBookingSlots,
		}), nil
	}

	sort.Ints(candidates)

	// 5️⃣ Filtro candidato a candidato
	occupied, err := uc.repo.ListOccupied(ctx, in.UserID, in.Date)
	if err != nil {
		return nil, err
	}

	duration := service.DurationMin
	slots := make([]domain.TimeSlot, 0, len(candidates))

	for _, start := range candidates {
		if !window.Contains(start) {
			continue
		}

		if blocks.IsBlockedAt(timegrid.FormatTime(start)) {
			continue
		}

		end := timegrid.AddMinutes(start, duration)

		conflict := false
		for _, occ := range occupied {
			if timegrid.IntervalsOverlap(start, end, occ.Start, occ.End) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Start: timegrid.FormatTime(start),
			End:   timegrid.FormatTime(end),
		})
	}

	return uc.done(ctx, in, &domain.AvailabilityResult{Slots: slots}), nil
}

func (uc *GetAvailability) done(
	ctx context.Context,
	in domain.AvailabilityInput,
	result *domain.AvailabilityResult,
) *domain.AvailabilityResult {
	if uc.cache != nil {
		uc.cache.Set(ctx, in.UserID, in.Date, in.ServiceID, result)
	}
	return result
}
