package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type SetStatusInput struct {
	AppointmentID uint
	Status        string
	PaymentMethod string
	ActorID       string
}

// SetStatus is the admin override: any status may be set, outside the
// client-facing lifecycle. Moving back into a blocking status re-runs the
// overlap check under the same serialisation as booking.
type SetStatus struct {
	ledger domain.Ledger
	locks  domain.Locker
	audit  *audit.Dispatcher
	now    timezone.Clock
	log    *slog.Logger
}

func NewSetStatus(
	ledger domain.Ledger,
	locks domain.Locker,
	audit *audit.Dispatcher,
	now timezone.Clock,
	log *slog.Logger,
) *SetStatus {
	return &SetStatus{
		ledger: ledger,
		locks:  locks,
		audit:  audit,
		now:    now,
		log:    log,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Appointment, error) {

	to, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.Validation("invalid_status", "Status inválido.")
	}

	current, err := uc.ledger.Get(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if to.Blocks() {
		release, err := uc.locks.Acquire(ctx, domain.SlotKey(current.BarberID, current.AppointmentDate))
		if err != nil {
			return nil, err
		}
		defer release()
	}

	var from string
	ap, err := uc.ledger.Transition(ctx, in.AppointmentID, func(ap *models.Appointment) error {
		from = ap.Status
		return domain.Override(ap, to, in.PaymentMethod, uc.now().UTC())
	})
	if err != nil {
		uc.log.Warn("status override rejected", "appointment_id", in.AppointmentID, "to", to, "err", err)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.ActorID,
		Action:   "appointment_status_overridden",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"from": from, "to": ap.Status},
	})
	uc.log.Info("appointment status overridden", "appointment_id", ap.ID, "from", from, "to", ap.Status)

	return ap, nil
}
