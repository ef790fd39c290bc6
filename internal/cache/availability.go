package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/EspacoLashStudio/studio-agenda/internal/domain/schedule"
)

// Cache curto de disponibilidade da página pública. Toda mutação de
// agenda (agendamento, bloqueio, expediente, catálogo) invalida o dia
// inteiro — é o contrato de "refresh" entre o núcleo e as interfaces:
// consulta sempre pull, invalidação sempre por dia.
type AvailabilityCache struct {
	rdb *redis.Client
	log *zap.Logger
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		log: log,
		ttl: 60 * time.Second,
	}
}

func key(userID uint, date string, serviceID uint) string {
	return fmt.Sprintf("availability:%d:%s:%d", userID, date, serviceID)
}

func dayPattern(userID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s:*", userID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	userID uint,
	date string,
	serviceID uint,
) (*domain.AvailabilityResult, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(userID, date, serviceID)).Bytes()
	if err != nil {
		return nil, false
	}

	var result domain.AvailabilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}

	return &result, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	userID uint,
	date string,
	serviceID uint,
	result *domain.AvailabilityResult,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(userID, date, serviceID), raw, c.ttl).Err(); err != nil {
		c.log.Debug("availability cache set failed", zap.Error(err))
	}
}

// InvalidateDay derruba todas as entradas do dia da profissional.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, userID uint, date string) {
	if c == nil || c.rdb == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, dayPattern(userID, date), 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Debug("availability cache del failed", zap.Error(err))
		}
	}
}
