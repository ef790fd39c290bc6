package schedule

import (
	"time"

	"github.com/EspacoLashStudio/studio-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// Complete fecha o atendimento com os campos de pagamento:
// sem forma de pagamento o status fica pendente, com forma fica pago.
func Complete(
	ap *models.Appointment,
	now time.Time,
	finalPrice float64,
	paymentMethod *string,
) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.Price = finalPrice
	ap.PaymentMethod = paymentMethod

	if paymentMethod == nil {
		ap.PaymentStatus = models.PaymentStatusPending
	} else {
		ap.PaymentStatus = models.PaymentStatusPaid
	}

	return nil
}
