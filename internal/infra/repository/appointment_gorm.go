package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	appointmentNotFoundMsg = "Agendamento não encontrado."
	slotConflictMsg        = "Horário indisponível. Escolha outro horário."
)

type AppointmentGormRepository struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

func NewAppointmentGormRepository(db *gorm.DB, lockTimeout time.Duration) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db, lockTimeout: lockTimeout}
}

func (r *AppointmentGormRepository) postgres() bool {
	return r.db.Dialector.Name() == "postgres"
}

// serialise takes a transaction-scoped advisory lock so API instances sharing
// the database also queue per barber and date. Other dialects rely on the
// in-process lock held by the caller.
func (r *AppointmentGormRepository) serialise(tx *gorm.DB, key string) error {
	if !r.postgres() {
		return nil
	}
	if r.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Barber").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) BlockingIntervals(
	ctx context.Context,
	barberID uint,
	date string,
) ([]domain.Interval, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"barber_id = ? AND appointment_date = ? AND status IN ?",
			barberID, date, domain.BlockingStatuses(),
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, classify(err, "", "")
	}

	out := make([]domain.Interval, 0, len(apps))
	for _, ap := range apps {
		out = append(out, domain.Interval{Start: ap.StartTime, End: ap.EndTime})
	}
	return out, nil
}

// --------------------------------------------------
// Commit
// --------------------------------------------------

func (r *AppointmentGormRepository) Book(
	ctx context.Context,
	d domain.Draft,
) (*models.Appointment, error) {

	ap := d.Appointment
	key := domain.SlotKey(ap.BarberID, ap.AppointmentDate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.serialise(tx, key); err != nil {
			return err
		}

		client, err := resolveClient(tx, d.Client)
		if err != nil {
			return err
		}

		if err := assertNoOverlap(tx, ap.BarberID, ap.StartTime, ap.EndTime, 0); err != nil {
			return err
		}

		ap.ClientID = client.ID
		ap.Client = *client
		return tx.Omit("Barber", "Client").Create(ap).Error
	})
	if err != nil {
		return nil, classify(err, "client_not_found", "Cliente não encontrado.")
	}
	return ap, nil
}

// resolveClient finds the client by phone digits or inserts it. Concurrent
// inserts of the same phone converge on the unique index: the loser's insert
// becomes a no-op and the row is read back.
func resolveClient(tx *gorm.DB, ref domain.ClientRef) (*models.Client, error) {
	var c models.Client

	if !ref.AutoCreate {
		if err := tx.Where("phone = ?", ref.Phone).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, httperr.NotFoundErr("client_not_found", "Cliente não encontrado para este telefone.")
			}
			return nil, err
		}
		return &c, nil
	}

	c = models.Client{Name: ref.Name, Phone: ref.Phone, Email: ref.Email}
	if err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(&c).Error; err != nil {
		return nil, err
	}
	if c.ID != 0 {
		return &c, nil
	}

	var existing models.Client
	if err := tx.Where("phone = ?", ref.Phone).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func assertNoOverlap(
	tx *gorm.DB,
	barberID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) error {

	q := tx.Model(&models.Appointment{}).
		Select("id").
		Where(
			"barber_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			barberID, domain.BlockingStatuses(), end, start,
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var ids []uint
	if err := q.Limit(1).Find(&ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		return httperr.Conflict("slot_conflict", slotConflictMsg)
	}
	return nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) Transition(
	ctx context.Context,
	appointmentID uint,
	fn domain.Mutation,
) (*models.Appointment, error) {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if r.postgres() {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var ap models.Appointment
		if err := q.First(&ap, appointmentID).Error; err != nil {
			return err
		}

		before := domain.Status(ap.Status)
		if err := fn(&ap); err != nil {
			return err
		}

		if domain.Reblocks(before, domain.Status(ap.Status)) {
			if err := r.serialise(tx, domain.SlotKey(ap.BarberID, ap.AppointmentDate)); err != nil {
				return err
			}
			if err := assertNoOverlap(tx, ap.BarberID, ap.StartTime, ap.EndTime, ap.ID); err != nil {
				return err
			}
		}

		return tx.Model(&ap).
			Select("status", "payment_method", "confirmed_at", "completed_at", "cancelled_at", "updated_at").
			Updates(&ap).Error
	})
	if err != nil {
		return nil, classify(err, "appointment_not_found", appointmentNotFoundMsg)
	}

	return r.Get(ctx, appointmentID)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := withDetails(r.db.WithContext(ctx)).
		First(&ap, appointmentID).Error; err != nil {
		return nil, classify(err, "appointment_not_found", appointmentNotFoundMsg)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Search(
	ctx context.Context,
	f domain.SearchFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("appointments.*").
		Joins("JOIN clients ON clients.id = appointments.client_id").
		Joins("JOIN barbers ON barbers.id = appointments.barber_id")

	if f.StartDate != "" {
		q = q.Where("appointments.appointment_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("appointments.appointment_date <= ?", f.EndDate)
	}
	if f.ClientName != "" {
		q = q.Where("LOWER(clients.name) LIKE ?", contains(f.ClientName))
	}
	if f.ClientPhone != "" {
		q = q.Where("clients.phone LIKE ?", "%"+f.ClientPhone+"%")
	}
	if f.BarberName != "" {
		q = q.Where("LOWER(barbers.name) LIKE ?", contains(f.BarberName))
	}
	if f.ServiceName != "" {
		q = q.Where(
			"EXISTS (SELECT 1 FROM appointment_services s WHERE s.appointment_id = appointments.id AND LOWER(s.service_name) LIKE ?)",
			contains(f.ServiceName),
		)
	}
	if f.Status != "" {
		q = q.Where("appointments.status = ?", f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var apps []models.Appointment
	if err := withDetails(q).
		Order("appointments.start_time ASC").
		Order("appointments.id ASC").
		Find(&apps).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListForDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := withDetails(r.db.WithContext(ctx)).
		Where("barber_id = ? AND appointment_date = ?", barberID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, classify(err, "", "")
	}
	return apps, nil
}

func contains(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

// Compile-time check
var _ domain.Ledger = (*AppointmentGormRepository)(nil)
