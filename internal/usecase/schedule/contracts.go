package schedule

import (
	"context"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
)

// Invalidator derruba a disponibilidade cacheada de um dia depois de
// qualquer mutação de agenda. Implementado pelo cache Redis; nil
// desliga a invalidação (testes).
type Invalidator interface {
	InvalidateDay(ctx context.Context, userID uint, date string)
}

// AvailabilityCache é o lado de leitura do mesmo cache.
type AvailabilityCache interface {
	Get(ctx context.Context, userID uint, date string, serviceID uint) (*domain.AvailabilityResult, bool)
	Set(ctx context.Context, userID uint, date string, serviceID uint, result *domain.AvailabilityResult)
}
