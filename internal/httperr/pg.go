package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Segunda linha de defesa contra corrida de reserva: além do lock
// FOR UPDATE na transação, o banco carrega um índice único parcial
// sobre (user, data, hora) de agendamentos vivos. Quem perde a
// corrida recebe unique_violation/exclusion_violation e o handler
// traduz para slot_conflict.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
