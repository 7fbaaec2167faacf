package repository

import (
	"testing"
	"time"

	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbpkg.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedBarber(t *testing.T, db *gorm.DB, name string) models.Barber {
	t.Helper()
	b := models.Barber{Name: name, CommissionRateService: 0.4, CommissionRateChemicalService: 0.5}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seed barber: %v", err)
	}
	return b
}

func seedService(t *testing.T, db *gorm.DB, name string, cents int64, minutes int) models.Service {
	t.Helper()
	s := models.Service{Name: name, PriceCents: cents, DurationMinutes: minutes}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

func draftAt(b models.Barber, services []models.Service, phone string, start time.Time) domain.Draft {
	links, total, minutes := domain.SnapshotServices(&b, services)
	return domain.Draft{
		Client: domain.ClientRef{Name: "Cliente", Phone: phone, AutoCreate: true},
		Appointment: &models.Appointment{
			BarberID:        b.ID,
			AppointmentDate: start.Format("2006-01-02"),
			StartTime:       start.UTC(),
			EndTime:         start.Add(time.Duration(minutes) * time.Minute).UTC(),
			DurationMinutes: minutes,
			Status:          string(domain.StatusScheduled),
			TotalPriceCents: total,
			Services:        links,
		},
	}
}
