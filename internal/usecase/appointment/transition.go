package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// TransitionInput identifies the appointment and who acts on it.
type TransitionInput struct {
	AppointmentID uint
	ActorID       string
	PaymentMethod string
}

// transitioner runs one client-facing lifecycle step inside the ledger.
type transitioner struct {
	ledger domain.Ledger
	audit  *audit.Dispatcher
	now    timezone.Clock
	log    *slog.Logger
}

func (t transitioner) run(
	ctx context.Context,
	in TransitionInput,
	action string,
	apply func(ap *models.Appointment, now time.Time) error,
) (*models.Appointment, error) {

	var from string
	ap, err := t.ledger.Transition(ctx, in.AppointmentID, func(ap *models.Appointment) error {
		from = ap.Status
		return apply(ap, t.now().UTC())
	})
	if err != nil {
		t.log.Warn(action+" rejected", "appointment_id", in.AppointmentID, "err", err)
		return nil, err
	}

	t.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": from, "to": ap.Status},
	})
	t.log.Info(action, "appointment_id", ap.ID, "from", from, "to", ap.Status)

	return ap, nil
}

// ======================================================
// CONFIRM
// ======================================================

type ConfirmAppointment struct{ transitioner }

func NewConfirmAppointment(ledger domain.Ledger, audit *audit.Dispatcher, now timezone.Clock, log *slog.Logger) *ConfirmAppointment {
	return &ConfirmAppointment{transitioner{ledger, audit, now, log}}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, in TransitionInput) (*models.Appointment, error) {
	return uc.run(ctx, in, "appointment_confirmed", func(ap *models.Appointment, now time.Time) error {
		return domain.Confirm(ap, now)
	})
}

// ======================================================
// COMPLETE
// ======================================================

type CompleteAppointment struct{ transitioner }

func NewCompleteAppointment(ledger domain.Ledger, audit *audit.Dispatcher, now timezone.Clock, log *slog.Logger) *CompleteAppointment {
	return &CompleteAppointment{transitioner{ledger, audit, now, log}}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, in TransitionInput) (*models.Appointment, error) {
	return uc.run(ctx, in, "appointment_completed", func(ap *models.Appointment, now time.Time) error {
		return domain.Complete(ap, in.PaymentMethod, now)
	})
}

// ======================================================
// CANCEL
// ======================================================

type CancelAppointment struct{ transitioner }

func NewCancelAppointment(ledger domain.Ledger, audit *audit.Dispatcher, now timezone.Clock, log *slog.Logger) *CancelAppointment {
	return &CancelAppointment{transitioner{ledger, audit, now, log}}
}

func (uc *CancelAppointment) Execute(ctx context.Context, in TransitionInput) (*models.Appointment, error) {
	return uc.run(ctx, in, "appointment_cancelled", func(ap *models.Appointment, now time.Time) error {
		return domain.Cancel(ap, now)
	})
}

// ======================================================
// NO-SHOW
// ======================================================

type MarkNoShow struct{ transitioner }

func NewMarkNoShow(ledger domain.Ledger, audit *audit.Dispatcher, now timezone.Clock, log *slog.Logger) *MarkNoShow {
	return &MarkNoShow{transitioner{ledger, audit, now, log}}
}

func (uc *MarkNoShow) Execute(ctx context.Context, in TransitionInput) (*models.Appointment, error) {
	return uc.run(ctx, in, "appointment_no_show", func(ap *models.Appointment, _ time.Time) error {
		return domain.MarkNoShow(ap)
	})
}
