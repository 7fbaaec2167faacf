package appointment

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var brt = time.FixedZone("BRT", -3*60*60)

// fixedNow is Saturday 2025-03-01 10:00 in the shop timezone.
func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 10, 0, 0, 0, brt)
}

type env struct {
	db      *gorm.DB
	catalog *repository.CatalogGormRepository
	ledger  *repository.AppointmentGormRepository
	locks   *lock.Keyed
	audit   *audit.Dispatcher
	cfg     SchedulingConfig
	barber  models.Barber
	corte   models.Service
	barba   models.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := dbpkg.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	e := &env{
		db:      db,
		catalog: repository.NewCatalogGormRepository(db),
		ledger:  repository.NewAppointmentGormRepository(db, time.Second),
		locks:   lock.NewKeyed(5 * time.Second),
		audit:   audit.NewDispatcher(logging.Discard(), audit.New(db)),
		cfg: SchedulingConfig{
			Location:          brt,
			Granularity:       15 * time.Minute,
			DefaultHours:      domain.DefaultHours{Open: "08:00", Close: "21:00"},
			ReadRetryAttempts: 3,
			RetryBackoff:      time.Millisecond,
		},
	}
	t.Cleanup(func() {
		e.audit.Close()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	e.barber = models.Barber{Name: "Roberto", CommissionRateService: 0.4, CommissionRateChemicalService: 0.5}
	e.corte = models.Service{Name: "Corte", PriceCents: 4500, DurationMinutes: 30}
	e.barba = models.Service{Name: "Barba", PriceCents: 2500, DurationMinutes: 20}
	for _, v := range []any{&e.barber, &e.corte, &e.barba} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return e
}

func (e *env) availability() *GetAvailability {
	return NewGetAvailability(e.catalog, e.ledger, e.cfg, fixedNow, logging.Discard())
}

func (e *env) scheduler() *CreateAppointment {
	return NewCreateAppointment(e.catalog, e.ledger, e.locks, e.audit, e.cfg, fixedNow, logging.Discard())
}

func (e *env) booking(phone, at string) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientName:          "Cliente Teste",
		ClientPhone:         phone,
		BarberID:            e.barber.ID,
		AppointmentDateTime: at,
		ServiceIDs:          []uint{e.corte.ID, e.barba.ID},
		AutoCreateClient:    true,
	}
}
