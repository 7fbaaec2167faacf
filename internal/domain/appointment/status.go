package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

var allStatuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func ParseStatus(s string) (Status, bool) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// Blocks reports whether an appointment in this status occupies its time interval.
// Cancelled and no-show appointments free the slot for rebooking.
func (s Status) Blocks() bool {
	return s == StatusScheduled || s == StatusConfirmed || s == StatusCompleted
}

// BlockingStatuses lists the statuses considered by the overlap check.
func BlockingStatuses() []string {
	return []string{
		string(StatusScheduled),
		string(StatusConfirmed),
		string(StatusCompleted),
	}
}

// ===============================
// Validations (client-facing lifecycle)
// ===============================

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.Validation("invalid_state", "Agendamento não pode ser confirmado.")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.Validation("invalid_state", "Agendamento não pode ser concluído.")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.Validation("invalid_state", "Agendamento não pode ser cancelado.")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if current.IsTerminal() {
		return httperr.Validation("invalid_state", "Agendamento já foi finalizado.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
