package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ClientRef identifies the client a booking belongs to. Phone holds digits only.
type ClientRef struct {
	Name  string
	Phone string
	Email string
	// When false an unknown phone is rejected instead of creating the client.
	AutoCreate bool
}

// Draft is a fully priced appointment waiting to be committed.
type Draft struct {
	Client      ClientRef
	Appointment *models.Appointment
}

type SearchFilter struct {
	StartDate   string
	EndDate     string
	ClientName  string
	ClientPhone string
	BarberName  string
	ServiceName string
	Status      string
	Limit       int
}

// Mutation changes an appointment loaded inside the ledger's transaction.
type Mutation func(ap *models.Appointment) error

// Ledger is the durable store of appointments and their service snapshots.
type Ledger interface {
	// -------- Availability --------
	BlockingIntervals(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]Interval, error)

	// -------- Commit --------

	// Book resolves the client, re-checks the interval against blocking
	// appointments and inserts the appointment with its links, all in one
	// transaction. A clash returns a slot_conflict business error.
	Book(
		ctx context.Context,
		d Draft,
	) (*models.Appointment, error)

	// -------- State change --------

	// Transition loads the appointment, applies fn and saves it. When fn moves
	// the appointment back into a blocking status the overlap check runs again.
	Transition(
		ctx context.Context,
		appointmentID uint,
		fn Mutation,
	) (*models.Appointment, error)

	// -------- Reads --------
	Get(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	Search(
		ctx context.Context,
		f SearchFilter,
	) ([]models.Appointment, error)

	ListForDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)
}

// Locker serialises critical sections sharing a key. The returned func releases the key.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// SlotKey scopes booking serialisation to one barber on one calendar date.
func SlotKey(barberID uint, date string) string {
	return fmt.Sprintf("barber:%d:%s", barberID, date)
}
