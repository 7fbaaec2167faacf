package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
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

func Complete(ap *models.Appointment, payment string, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if err := applyPayment(ap, payment); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
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

func MarkNoShow(ap *models.Appointment) error {
	if err := CanMarkNoShow(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusNoShow)
	return nil
}

// Override is the admin escape hatch: any status may be set directly.
// It does not consult the lifecycle rules above.
func Override(ap *models.Appointment, to Status, payment string, now time.Time) error {
	if _, ok := ParseStatus(string(to)); !ok {
		return httperr.Validation("invalid_status", "Status inválido.")
	}
	if err := applyPayment(ap, payment); err != nil {
		return err
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}

func applyPayment(ap *models.Appointment, payment string) error {
	if payment == "" {
		return nil
	}
	pm, ok := ParsePaymentMethod(payment)
	if !ok {
		return httperr.Validation("invalid_payment_method", "Forma de pagamento inválida.")
	}
	ap.PaymentMethod = string(pm)
	return nil
}

// Reblocks reports whether moving from one status to another makes the
// appointment occupy its interval again, which needs a fresh overlap check.
func Reblocks(from, to Status) bool {
	return !from.Blocks() && to.Blocks()
}
