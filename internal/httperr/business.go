package httperr

import "errors"

// ===============================
// Códigos de negócio
// ===============================

// Taxonomia usada pelo núcleo de agenda. Erros de validação são
// esperados e recuperáveis; storage_unavailable indica operação
// não confirmada (sem retry automático — retry pode duplicar reserva).
const (
	CodeInvalidTimeFormat   = "invalid_time_format"
	CodeServiceNotFound     = "service_not_found"
	CodeServiceInactive     = "service_inactive"
	CodeOutsideWorkingHours = "outside_working_hours"
	CodeSlotBlocked         = "slot_blocked"
	CodeSlotConflict        = "slot_conflict"
	CodeInvalidTransition   = "invalid_transition"
	CodeStorageUnavailable  = "storage_unavailable"
)

type BusinessError struct {
	Code string
	Err  error
}

func (e BusinessError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// WrapStorage marca uma falha de persistência como operação não
// confirmada, preservando a causa.
func WrapStorage(err error) error {
	if err == nil {
		return nil
	}
	return BusinessError{Code: CodeStorageUnavailable, Err: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código quando err é um erro de negócio.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
